package outwriter

import (
	"fmt"
	"strings"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// Canvas renderers produce the markdown bodies pushed to the chat canvases.
// They never apply ANSI color; the chat surface does its own styling.

// RenderCapacityCanvas renders the capacity summary plus the availability
// calendar as chat markdown.
func RenderCapacityCanvas(report *schema.TeamReport, grids []core.Grid, cfg *contract.Config) string {
	fm := createFormatter(cfg.Precision)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s capacity\n\n", report.Team.Name)
	b.WriteString("| Sprint | Start | End | Days | Points | Eng | Prod | Scheduled | Label |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		c := &sprint.Capacity
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %s | %s | %s | %s | %s |\n",
			sprint.Window.Number,
			schema.FormatDate(sprint.Window.Start),
			schema.FormatDate(sprint.Window.End),
			c.TotalTeamDays,
			fm(c.Points),
			fm(c.EngPoints),
			fm(c.ProdPoints),
			fm(c.ScheduledPoints(report.Team)),
			contract.GetPlainLabel(c.DiffPct(report.Team), c.ScheduledPoints(report.Team)))
	}

	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		notes := canvasSprintNotes(sprint, report.Team)
		if len(notes) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n**Sprint %d**\n", sprint.Window.Number)
		for _, note := range notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	for gi := range grids {
		grid := &grids[gi]
		fmt.Fprintf(&b, "\n## Sprint %d calendar\n\n", grid.Window.Number)
		writeGridMarkdown(&b, grid)
	}

	return b.String()
}

// RenderAbsencesCanvas renders per-sprint absences, POI absences, conflict
// warnings and upcoming bank holidays as chat markdown.
func RenderAbsencesCanvas(report *schema.TeamReport, conflicts map[int][]core.Conflict, holidays map[schema.Region][]schema.Holiday, cfg *contract.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s absences\n", report.Team.Name)
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		fmt.Fprintf(&b, "\n## %s\n\n", sprintHeading(sprint.Window))

		if len(sprint.Absences) == 0 {
			b.WriteString("No absences.\n")
		} else {
			for _, name := range sortedNames(sprint.Absences) {
				fmt.Fprintf(&b, "- %s: %s\n", name, formatIntervals(sprint.Absences[name]))
			}
		}
		if sprint.HasSocial() {
			fmt.Fprintf(&b, "- Company social on %s\n", schema.FormatDate(sprint.SocialDate))
		}

		if len(sprint.POIAbsences) > 0 {
			b.WriteString("\n**People of interest**\n")
			for _, name := range sortedNames(sprint.POIAbsences) {
				fmt.Fprintf(&b, "- %s: %s\n", name, formatIntervals(sprint.POIAbsences[name]))
			}
		}

		writeConflictMarkdown(&b, conflicts[sprint.Window.Number])
	}

	if len(holidays) > 0 {
		b.WriteString("\n## Bank holidays\n")
		for _, region := range cfg.Regions {
			list := holidays[region]
			if len(list) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n**%s**\n", regionName(region))
			for _, hol := range list {
				fmt.Fprintf(&b, "- %s: %s\n", schema.FormatDate(hol.Date), hol.Name)
			}
		}
	}

	return b.String()
}

// RenderSupportCanvas renders per-sprint L1/L2 duty plus conflict warnings as
// chat markdown.
func RenderSupportCanvas(report *schema.TeamReport, conflicts map[int][]core.Conflict, cfg *contract.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s support\n", report.Team.Name)
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		fmt.Fprintf(&b, "\n## %s\n\n", sprintHeading(sprint.Window))

		if len(sprint.L1) == 0 && len(sprint.L2) == 0 {
			b.WriteString("No duty scheduled.\n")
		}
		for _, name := range sortedNames(sprint.L1) {
			fmt.Fprintf(&b, "- %s (L1): %s\n", name, schema.FormatDateRanges(sprint.L1[name]))
		}
		for _, name := range sortedNames(sprint.L2) {
			fmt.Fprintf(&b, "- %s (L2): %s\n", name, schema.FormatDateRanges(sprint.L2[name]))
		}

		writeConflictMarkdown(&b, conflicts[sprint.Window.Number])
	}

	return b.String()
}

func canvasSprintNotes(sprint *schema.SprintReport, team *schema.Team) []string {
	var notes []string
	c := &sprint.Capacity
	for _, ev := range c.Starters {
		notes = append(notes, fmt.Sprintf("%s joins on %s", ev.Name, schema.FormatDate(ev.Date)))
	}
	for _, ev := range c.Leavers {
		notes = append(notes, fmt.Sprintf("%s leaves on %s", ev.Name, schema.FormatDate(ev.Date)))
	}
	for _, note := range c.Ramping {
		notes = append(notes, fmt.Sprintf("%s is ramping at %d%%", note.Name, note.Pct))
	}
	if sprint.HasSocial() {
		notes = append(notes, fmt.Sprintf("company social on %s", schema.FormatDate(sprint.SocialDate)))
	}
	if c.OverCapacity(team) {
		notes = append(notes, fmt.Sprintf("scheduled work exceeds capacity by %.1f points",
			c.ScheduledPoints(team)-c.Points))
	}
	return notes
}

func writeConflictMarkdown(b *strings.Builder, list []core.Conflict) {
	if len(list) == 0 {
		return
	}
	b.WriteString("\n**Warnings**\n")
	for _, c := range list {
		fmt.Fprintf(b, "- %s is on %s duty on %s but is absent\n",
			c.Name, strings.ToUpper(string(c.Tier)), schema.FormatDate(c.Date))
	}
}

func writeGridMarkdown(b *strings.Builder, grid *core.Grid) {
	b.WriteString("| Member |")
	for _, day := range grid.Days {
		fmt.Fprintf(b, " %s %d |", day.Weekday().String()[:2], day.Day())
	}
	b.WriteString("\n|---|")
	for range grid.Days {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, row := range grid.Rows {
		fmt.Fprintf(b, "| %s |", row.Name)
		for _, cell := range row.Cells {
			if cell == "" {
				cell = " "
			}
			fmt.Fprintf(b, " %s |", cell)
		}
		b.WriteString("\n")
	}
}
