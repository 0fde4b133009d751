package core

import (
	"context"
	"fmt"
	"time"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// Sources bundles the external data providers the orchestrator reads from.
// Each provider is consulted once per report run over the full date range;
// per-sprint slicing happens locally afterwards.
type Sources struct {
	HR      contract.AbsenceSource
	OnCall  contract.OnCallSource
	Tracker contract.EpicSource
}

// PlanConfig carries the calendar parameters for a report run.
type PlanConfig struct {
	Sprints     int       // Number of sprint windows to report on
	SprintsBack int       // Windows to shift the range into the past
	Today       time.Time // Reference date for resolving the current sprint
	Calendar    Calendar
}

// NewPlanConfig derives the calendar parameters for a run from the resolved
// configuration.
func NewPlanConfig(cfg *contract.Config) PlanConfig {
	return PlanConfig{
		Sprints:     cfg.Sprints,
		SprintsBack: cfg.SprintsBack,
		Today:       cfg.ReferenceDate(),
		Calendar:    Calendar{AnchorDate: cfg.AnchorDate, AnchorNumber: cfg.AnchorNumber},
	}
}

// Windows resolves the sprint windows covered by the run: the sprint
// containing Today, shifted back by SprintsBack, then Sprints consecutive
// windows from there.
func (pc PlanConfig) Windows() []schema.SprintWindow {
	first := SprintStart(pc.Today).AddDate(0, 0, -schema.SprintLengthDays*pc.SprintsBack)
	return pc.Calendar.Enumerate(first, pc.Sprints)
}

// BuildTeamReport fetches absence, on-call, and tracker data for the team
// over the full sprint range and computes per-sprint availability and
// capacity. A source error aborts the run; partial reports are never
// returned.
func BuildTeamReport(ctx context.Context, team *schema.Team, src Sources, pc PlanConfig) (*schema.TeamReport, error) {
	windows := pc.Windows()
	if len(windows) == 0 {
		return nil, fmt.Errorf("no sprint windows to report on")
	}
	rangeStart := windows[0].Start
	rangeEnd := windows[len(windows)-1].End

	directory, err := src.HR.Directory(ctx)
	if err != nil {
		return nil, fmt.Errorf("employee directory: %w", err)
	}
	idsByName := make(map[string]string, len(directory))
	for _, entry := range directory {
		idsByName[entry.Name] = entry.ID
	}

	memberIDs, poiIDs := resolveEmployeeIDs(team, idsByName)

	absences, err := src.HR.Absences(ctx, append(memberIDs, poiIDs...), rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("absences: %w", err)
	}
	memberAbsences, poiAbsences := splitAbsences(team, absences)

	l1, err := fetchShifts(ctx, src.OnCall, team, team.L1Rotation, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("L1 shifts: %w", err)
	}
	l2, err := fetchShifts(ctx, src.OnCall, team, team.L2Rotation, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("L2 shifts: %w", err)
	}

	report := &schema.TeamReport{Team: team, Sprints: make([]schema.SprintReport, 0, len(windows))}
	for _, w := range windows {
		sprint := schema.SprintReport{
			Window:      w,
			SocialDate:  SocialInWindow(team.Socials, w),
			Absences:    FilterIntervals(memberAbsences, w),
			POIAbsences: FilterIntervals(poiAbsences, w),
			L1:          FilterDates(l1, w),
			L2:          FilterDates(l2, w),
		}

		epics, err := src.Tracker.ScheduledEpics(ctx, team.TrackerKey, w.End)
		if err != nil {
			return nil, fmt.Errorf("scheduled epics for sprint %d: %w", w.Number, err)
		}

		rows := make([]schema.AvailabilityRow, 0, len(team.Members))
		for i := range team.Members {
			member := &team.Members[i]
			rows = append(rows, AvailableDays(member, w, memberInput(member.Name, &sprint)))
		}
		sprint.Capacity = Aggregate(rows, team, epics)
		report.Sprints = append(report.Sprints, sprint)
	}
	return report, nil
}

// memberInput slices the sprint's window-filtered data down to one member's
// weekday day sets and social penalty. A social anywhere inside the window
// costs every member one day, regardless of their other commitments.
func memberInput(name string, sprint *schema.SprintReport) MemberSprintInput {
	in := MemberSprintInput{
		Absences: schema.NewDaySet(),
		L1:       schema.NewDaySet(),
		L2:       schema.NewDaySet(),
	}
	for _, interval := range sprint.Absences[name] {
		for _, d := range interval.ExpandWeekdays(sprint.Window) {
			in.Absences.Add(d)
		}
	}
	for _, d := range sprint.L1[name] {
		if schema.IsWeekday(d) {
			in.L1.Add(d)
		}
	}
	for _, d := range sprint.L2[name] {
		if schema.IsWeekday(d) {
			in.L2.Add(d)
		}
	}
	if sprint.HasSocial() {
		in.SocialPenalty = 1
	}
	return in
}

// resolveEmployeeIDs maps roster HR names and POI names to directory IDs.
// Names missing from the directory are silently skipped; their absences
// simply never appear, which renders the same as full availability.
func resolveEmployeeIDs(team *schema.Team, idsByName map[string]string) (members, pois []string) {
	for i := range team.Members {
		if id, ok := idsByName[team.Members[i].HRName]; ok {
			members = append(members, id)
		}
	}
	for _, name := range poiNames(team) {
		if id, ok := idsByName[name]; ok {
			pois = append(pois, id)
		}
	}
	return members, pois
}

// splitAbsences divides the HR response between roster members (remapped to
// display names) and people of interest (kept under their own names).
func splitAbsences(team *schema.Team, raw map[string][]schema.AbsenceInterval) (members, pois map[string][]schema.AbsenceInterval) {
	displayByHRName := make(map[string]string, len(team.Members))
	for i := range team.Members {
		displayByHRName[team.Members[i].HRName] = team.Members[i].Name
	}
	poiSet := make(map[string]struct{})
	for _, name := range poiNames(team) {
		poiSet[name] = struct{}{}
	}

	members = make(map[string][]schema.AbsenceInterval)
	pois = make(map[string][]schema.AbsenceInterval)
	for hrName, intervals := range raw {
		if display, ok := displayByHRName[hrName]; ok {
			members[display] = intervals
			continue
		}
		if _, ok := poiSet[hrName]; ok {
			pois[hrName] = intervals
		}
	}
	return members, pois
}

// poiNames returns the tracked non-member names: the configured people of
// interest plus the manager.
func poiNames(team *schema.Team) []string {
	names := make([]string, 0, len(team.PeopleOfInterest)+1)
	names = append(names, team.PeopleOfInterest...)
	if team.Manager != "" {
		names = append(names, team.Manager)
	}
	return names
}

// fetchShifts pulls one rotation's duty dates and remaps the on-call system
// names back to roster display names. An empty rotation ID means the team
// does not staff that tier; no lookup is made.
func fetchShifts(ctx context.Context, src contract.OnCallSource, team *schema.Team, rotationID string, start, end time.Time) (map[string][]time.Time, error) {
	if rotationID == "" {
		return map[string][]time.Time{}, nil
	}
	raw, err := src.Shifts(ctx, rotationID, start, end)
	if err != nil {
		return nil, err
	}

	displayByOnCall := make(map[string]string, len(team.Members))
	for i := range team.Members {
		displayByOnCall[team.Members[i].OnCallName] = team.Members[i].Name
	}
	out := make(map[string][]time.Time, len(raw))
	for onCallName, dates := range raw {
		if display, ok := displayByOnCall[onCallName]; ok {
			out[display] = dates
		}
	}
	return out, nil
}
