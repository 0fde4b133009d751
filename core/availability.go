package core

import (
	"math"

	"github.com/brdge/sprintplan/schema"
)

// MemberSprintInput carries the window-filtered external data needed to
// compute one member's availability for one sprint. Absence days are
// weekday dates inside the window; on-call days are already weekday-only
// upstream.
type MemberSprintInput struct {
	Absences      schema.DaySet
	L1            schema.DaySet
	L2            schema.DaySet
	SocialPenalty int // 1 when a company social falls inside the sprint, else 0
}

// AvailableDays computes the availability row for a member in a sprint.
//
// The base case is 10 working days minus absences, L1 duty, and the social
// penalty, floored at 0. Leavers are truncated to the weekdays up to and
// including their leave date; members who left before the sprint are
// excluded entirely. Starters joining mid-sprint are truncated from their
// start date, and an active ramp multiplier discounts the final count.
// When a leave date applies to the sprint (leave on or before the sprint
// end), the leaver branch takes precedence and the starter branch is
// skipped for that sprint.
func AvailableDays(m *schema.Member, w schema.SprintWindow, in MemberSprintInput) schema.AvailabilityRow {
	row := schema.AvailabilityRow{
		Name:         m.Name,
		HolidayCount: len(in.Absences),
		L1Days:       len(in.L1),
		L2Days:       len(in.L2),
		RampPct:      100,
	}

	actual := clampDays(schema.SprintWorkDays - len(in.Absences) - len(in.L1) - in.SocialPenalty)

	leaverApplies := false
	if m.HasLeaveDate() {
		leave := schema.Day(m.LeaveDate)
		switch {
		case leave.Before(w.Start):
			// Already gone: contributes nothing and reports zero counts.
			row.Excluded = true
			leaverApplies = true
		case !leave.After(w.End):
			actual = clampDays(schema.WeekdayCount(w.Start, leave) - len(in.Absences) - len(in.L1) - in.SocialPenalty)
			row.Leaving = true
			leaverApplies = true
		}
		// leave after the sprint end: full-sprint base case, and the
		// starter branch below may still apply.
	}

	multiplier := 1.0
	if !leaverApplies && m.HasStartDate() {
		start := schema.Day(m.StartDate)
		if w.End.Before(start) {
			// Not yet joined.
			row.Excluded = true
		} else {
			sprintsSince := floorDiv(int(w.Start.Sub(start).Hours()/24), schema.SprintLengthDays)
			if sprintsSince < 0 {
				sprintsSince = 0
			}
			multiplier = min(m.StartPct+schema.RampStepPerSprint*float64(sprintsSince), 1.0)

			if w.Contains(start) {
				actual = clampDays(schema.WeekdayCount(start, w.End) - len(in.Absences) - len(in.L1) - in.SocialPenalty)
				row.Joined = true
			}
			if multiplier < 1.0 {
				row.Ramping = true
				row.RampPct = int(math.Round(multiplier * 100))
			}
		}
	}

	if row.Excluded {
		row.HolidayCount = 0
		row.L1Days = 0
		row.L2Days = 0
		return row
	}

	row.ActualDays = actual
	if row.Ramping {
		row.EffectiveDays = int(math.Round(float64(actual) * multiplier))
	} else {
		row.EffectiveDays = actual
	}
	return row
}

func clampDays(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
