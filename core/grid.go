package core

import (
	"sort"
	"time"

	"github.com/brdge/sprintplan/schema"
)

// Grid cell markers. Empty string means the member is plainly available.
const (
	CellAbsent  = "X"
	CellL1      = "L1"
	CellL2      = "L2"
	CellSocial  = "S"
	CellNotHere = "-"
	CellAvail   = ""
	CellHoliday = "BH"
	CellWeekend = "."
)

// GridRow is one member's cells across the sprint's calendar days.
type GridRow struct {
	Name  string
	Cells []string
}

// Grid is a day-by-member matrix for one sprint window, used by the
// calendar rendering. Days covers every calendar day of the window in
// order, weekends included.
type Grid struct {
	Window schema.SprintWindow
	Days   []time.Time
	Rows   []GridRow
}

// BuildGrid lays the sprint report out as a calendar matrix. Cell
// precedence, highest first: not-on-team, weekend, bank holiday, absence,
// L1, L2, social.
func BuildGrid(team *schema.Team, sprint *schema.SprintReport, bankHolidays []schema.Holiday) Grid {
	grid := Grid{Window: sprint.Window}
	for d := sprint.Window.Start; !d.After(sprint.Window.End); d = d.AddDate(0, 0, 1) {
		grid.Days = append(grid.Days, d)
	}

	holidaySet := schema.NewDaySet()
	for _, h := range bankHolidays {
		holidaySet.Add(h.Date)
	}

	names := make([]string, 0, len(team.Members))
	for i := range team.Members {
		names = append(names, team.Members[i].Name)
	}
	sort.Strings(names)

	for _, name := range names {
		member := team.MemberByName(name)
		row := GridRow{Name: name, Cells: make([]string, 0, len(grid.Days))}

		absent := schema.NewDaySet()
		for _, interval := range sprint.Absences[name] {
			for _, d := range interval.ExpandDays() {
				absent.Add(d)
			}
		}
		l1 := schema.NewDaySet()
		for _, d := range sprint.L1[name] {
			l1.Add(schema.Day(d))
		}
		l2 := schema.NewDaySet()
		for _, d := range sprint.L2[name] {
			l2.Add(schema.Day(d))
		}

		for _, d := range grid.Days {
			row.Cells = append(row.Cells, gridCell(member, d, sprint, holidaySet, absent, l1, l2))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func gridCell(m *schema.Member, d time.Time, sprint *schema.SprintReport, holidays, absent, l1, l2 schema.DaySet) string {
	if m != nil {
		if m.HasStartDate() && d.Before(schema.Day(m.StartDate)) {
			return CellNotHere
		}
		if m.HasLeaveDate() && d.After(schema.Day(m.LeaveDate)) {
			return CellNotHere
		}
	}
	if !schema.IsWeekday(d) {
		return CellWeekend
	}
	if holidays.Has(d) {
		return CellHoliday
	}
	if absent.Has(d) {
		return CellAbsent
	}
	if l1.Has(d) {
		return CellL1
	}
	if l2.Has(d) {
		return CellL2
	}
	if sprint.HasSocial() && d.Equal(sprint.SocialDate) {
		return CellSocial
	}
	return CellAvail
}
