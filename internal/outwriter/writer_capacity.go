package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/parquet"
	"github.com/brdge/sprintplan/schema"
)

// WriteCapacityReport outputs the capacity summary, dispatching based on the output format configured.
func WriteCapacityReport(report *schema.TeamReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCapacityCSV(w, report, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		return parquet.WriteCapacityParquet(parquet.ConvertTeamReport(report), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCapacityTable(w, report, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeCapacityCSV writes one row per sprint with the aggregated totals.
func writeCapacityCSV(w io.Writer, report *schema.TeamReport, fmtFloat func(float64) string) error {
	header := []string{
		"sprint", "start", "end", "team_days", "holidays",
		"points", "eng_points", "prod_points", "epics", "scheduled_points", "diff_pct", "label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i := range report.Sprints {
			sprint := &report.Sprints[i]
			c := &sprint.Capacity
			record := []string{
				strconv.Itoa(sprint.Window.Number),
				schema.FormatDate(sprint.Window.Start),
				schema.FormatDate(sprint.Window.End),
				strconv.Itoa(c.TotalTeamDays),
				strconv.Itoa(c.TotalHolidays),
				fmtFloat(c.Points),
				fmtFloat(c.EngPoints),
				fmtFloat(c.ProdPoints),
				fmtFloat(c.ScheduledEpics),
				fmtFloat(c.ScheduledPoints(report.Team)),
				fmtFloat(c.DiffPct(report.Team)),
				contract.GetPlainLabel(c.DiffPct(report.Team), c.ScheduledPoints(report.Team)),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeCapacityTable generates and writes the human-readable sprint summary.
func writeCapacityTable(w io.Writer, report *schema.TeamReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	fmt.Fprintf(w, "Capacity for %s\n\n", report.Team.Name)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Sprint", "Start", "End", "Days", "Holidays", "Points", "Eng", "Prod", "Epics", "Scheduled", "Diff%", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		c := &sprint.Capacity
		data = append(data, []string{
			strconv.Itoa(sprint.Window.Number),
			schema.FormatDate(sprint.Window.Start),
			schema.FormatDate(sprint.Window.End),
			strconv.Itoa(c.TotalTeamDays),
			strconv.Itoa(c.TotalHolidays),
			fmtFloat(c.Points),
			fmtFloat(c.EngPoints),
			fmtFloat(c.ProdPoints),
			fmtFloat(c.ScheduledEpics),
			fmtFloat(c.ScheduledPoints(report.Team)),
			fmtFloat(c.DiffPct(report.Team)),
			capacityLabel(c, report.Team, cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for i := range report.Sprints {
		writeSprintNotes(w, &report.Sprints[i], report.Team)
	}

	fmt.Fprintf(w, "\nComputed %d sprints in %v\n", len(report.Sprints), duration.Round(time.Millisecond))
	return nil
}

// writeSprintNotes prints the joiners, leavers, ramping members, and social
// for one sprint, skipping sprints with nothing to note.
func writeSprintNotes(w io.Writer, sprint *schema.SprintReport, team *schema.Team) {
	c := &sprint.Capacity
	if len(c.Starters) == 0 && len(c.Leavers) == 0 && len(c.Ramping) == 0 && !sprint.HasSocial() && !c.OverCapacity(team) {
		return
	}

	fmt.Fprintf(w, "\n%s:\n", sprintHeading(sprint.Window))
	for _, s := range c.Starters {
		fmt.Fprintf(w, "  + %s joins %s\n", s.Name, schema.FormatDate(s.Date))
	}
	for _, l := range c.Leavers {
		fmt.Fprintf(w, "  - %s leaves %s\n", l.Name, schema.FormatDate(l.Date))
	}
	for _, r := range c.Ramping {
		fmt.Fprintf(w, "  ~ %s ramping at %d%%\n", r.Name, r.Pct)
	}
	if sprint.HasSocial() {
		fmt.Fprintf(w, "  * company social on %s\n", schema.FormatDate(sprint.SocialDate))
	}
	if c.OverCapacity(team) {
		over := c.ScheduledPoints(team) - c.Points
		fmt.Fprintf(w, "  ! scheduled work exceeds capacity by %s points\n", strings.TrimSpace(fmt.Sprintf("%.1f", over)))
	}
}
