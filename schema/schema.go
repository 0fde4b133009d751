// Package schema has configs, models and shared constants for all parts of sprintplan.
package schema

import "time"

// Member represents a single roster entry for a team.
// The three name fields form the member's identity across the external
// systems; they are resolved once at roster load time and never re-derived.
type Member struct {
	Name       string    // Display name used in all rendered output
	HRName     string    // Name as known to the HR absence system
	OnCallName string    // Name as known to the on-call scheduling system
	StartDate  time.Time // Date the member joined the team (zero = long-standing member)
	LeaveDate  time.Time // Date the member leaves the team (zero = not leaving)
	StartPct   float64   // Starting capacity percentage for ramp-up, in (0, 1]
}

// HasStartDate reports whether the member has a recorded join date.
func (m *Member) HasStartDate() bool { return !m.StartDate.IsZero() }

// HasLeaveDate reports whether the member has a recorded leave date.
func (m *Member) HasLeaveDate() bool { return !m.LeaveDate.IsZero() }

// Team represents a team with its capacity coefficients and roster.
// Teams are loaded once at startup and are read-only thereafter.
type Team struct {
	Name             string   // Team name (CLI selector, case-insensitive)
	TrackerKey       string   // Issue tracker project key for epic totals
	PointsPerEpic    float64  // Story points represented by a single scheduled epic
	Manager          string   // Manager display name (tracked as a POI)
	Members          []Member // Core roster counted toward capacity
	PeopleOfInterest []string // Non-members whose absences are tracked for information only
	PointCapacity    float64  // Points produced per available person-day
	LoadFactor       float64  // Fraction of an available day spent on planned work
	EngineeringSplit float64  // Fraction of capacity reserved for engineering work, in [0, 1]
	AbsencesCanvas   string   // Chat canvas ID for the absences report (empty = not published)
	CapacityCanvas   string   // Chat canvas ID for the capacity report (empty = not published)
	SupportCanvas    string   // Chat canvas ID for the support report (empty = not published)

	L1Rotation string      // On-call system rotation ID for L1 duty
	L2Rotation string      // On-call system rotation ID for L2 duty
	Socials    []time.Time // Company social dates (one weekday deducted per attendee)
}

// MemberByName returns the roster entry with the given display name, or nil.
func (t *Team) MemberByName(name string) *Member {
	for i := range t.Members {
		if t.Members[i].Name == name {
			return &t.Members[i]
		}
	}
	return nil
}

// OnCallNames returns the on-call aliases of every roster member.
func (t *Team) OnCallNames() []string {
	names := make([]string, 0, len(t.Members))
	for i := range t.Members {
		names = append(names, t.Members[i].OnCallName)
	}
	return names
}

// SprintWindow is a single 14-calendar-day planning window. Start is always a
// Monday and End is always Start plus 13 days.
type SprintWindow struct {
	Number int       // Sequential sprint number relative to the configured anchor
	Start  time.Time // First calendar day of the sprint (Monday)
	End    time.Time // Last calendar day of the sprint (Sunday, Start+13d)
}

// Contains reports whether the given day falls inside the window, inclusive.
func (w SprintWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// AbsenceInterval is a single contiguous absence, inclusive on both ends.
// Intervals are normalized at the ingestion boundary; downstream code never
// re-parses raw absence payloads.
type AbsenceInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval overlaps the sprint window.
func (a AbsenceInterval) Overlaps(w SprintWindow) bool {
	return !a.End.Before(w.Start) && !a.Start.After(w.End)
}

// AvailabilityRow is the per-member availability result for one sprint.
// ActualDays is the unramped day count; EffectiveDays has the ramp multiplier
// applied and is what contributes to team totals.
type AvailabilityRow struct {
	Name          string // Member display name
	ActualDays    int    // Available weekdays before ramp adjustment
	EffectiveDays int    // Available days after ramp adjustment (== ActualDays when not ramping)
	HolidayCount  int    // Absence days inside the sprint window (0 when excluded)
	L1Days        int    // L1 on-call days inside the sprint window (0 when excluded)
	L2Days        int    // L2 on-call days inside the sprint window (0 when excluded)
	Excluded      bool   // Member is fully outside the sprint (left before, or joins after)
	Ramping       bool   // Ramp multiplier below 1.0 applied this sprint
	RampPct       int    // Ramp multiplier as a rounded percentage (100 when not ramping)
	Joined        bool   // StartDate falls inside this sprint
	Leaving       bool   // LeaveDate falls inside this sprint
}

// MemberEvent records a member joining or leaving during a sprint.
type MemberEvent struct {
	Name string
	Date time.Time
}

// RampNote records a member whose capacity is ramp-discounted this sprint.
type RampNote struct {
	Name string
	Pct  int // Ramp multiplier as a rounded percentage
}

// SprintCapacity is the aggregated team capacity for a single sprint.
// It is derived entirely from the availability rows plus team coefficients
// and is never mutated after construction.
type SprintCapacity struct {
	Rows           []AvailabilityRow // Sorted by display name
	TotalTeamDays  int               // Sum of effective days across non-excluded rows
	TotalHolidays  int               // Sum of holiday counts across non-excluded rows
	Points         float64           // TotalTeamDays * LoadFactor * PointCapacity
	EngPoints      float64           // Points * EngineeringSplit
	ProdPoints     float64           // Points - EngPoints
	ScheduledEpics float64           // Externally supplied epic total for the sprint (0 when absent)
	Starters       []MemberEvent     // Members joining during this sprint
	Leavers        []MemberEvent     // Members leaving during this sprint
	Ramping        []RampNote        // Members with an active ramp discount, sorted by name
}

// ScheduledPoints converts the scheduled epic total into story points.
func (c *SprintCapacity) ScheduledPoints(team *Team) float64 {
	return c.ScheduledEpics * team.PointsPerEpic
}

// OverCapacity reports whether the scheduled epics exceed the computed
// point capacity for the sprint.
func (c *SprintCapacity) OverCapacity(team *Team) bool {
	return c.ScheduledPoints(team) > c.Points
}

// DiffPct returns the percentage difference between scheduled points and
// point capacity. A zero point capacity yields 0 rather than a division error.
func (c *SprintCapacity) DiffPct(team *Team) float64 {
	if c.Points <= 0 {
		return 0
	}
	return 100.0 * (c.ScheduledPoints(team) - c.Points) / c.Points
}

// SprintReport is everything known about one sprint for one team: the raw
// window-filtered inputs plus the computed capacity.
type SprintReport struct {
	Window      SprintWindow
	SocialDate  time.Time                    // Company social inside the window (zero = none)
	Absences    map[string][]AbsenceInterval // Member display name -> intervals overlapping the window
	POIAbsences map[string][]AbsenceInterval // POI/manager display name -> intervals overlapping the window
	L1          map[string][]time.Time       // Member display name -> L1 duty dates inside the window
	L2          map[string][]time.Time       // Member display name -> L2 duty dates inside the window
	Capacity    SprintCapacity
}

// HasSocial reports whether a company social falls inside the sprint.
func (s *SprintReport) HasSocial() bool { return !s.SocialDate.IsZero() }

// TeamReport is the full multi-sprint result structure handed to the
// presentation and transport layers. No formatting is applied here.
type TeamReport struct {
	Team    *Team
	Sprints []SprintReport // In sprint order
}

// DirectoryEntry is one person in the HR employee directory.
type DirectoryEntry struct {
	ID       string // HR system employee ID
	Name     string // Resolved display name
	Division string // Organizational division (used by the year-end rota)
}

// Holiday is a single public holiday resolved by a holiday calendar.
type Holiday struct {
	Date time.Time
	Name string
}
