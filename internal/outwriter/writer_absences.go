package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// WriteAbsenceReport outputs the per-member availability listing, dispatching
// based on the output format configured.
func WriteAbsenceReport(report *schema.TeamReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAbsenceCSV(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAbsenceTables(w, report)
		}, "Wrote table")
	}
}

func writeAbsenceCSV(w io.Writer, report *schema.TeamReport) error {
	header := []string{"sprint", "member", "actual_days", "effective_days", "holidays", "l1_days", "l2_days", "ramp_pct", "status", "absences"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i := range report.Sprints {
			sprint := &report.Sprints[i]
			for _, row := range sprint.Capacity.Rows {
				record := []string{
					strconv.Itoa(sprint.Window.Number),
					row.Name,
					strconv.Itoa(row.ActualDays),
					strconv.Itoa(row.EffectiveDays),
					strconv.Itoa(row.HolidayCount),
					strconv.Itoa(row.L1Days),
					strconv.Itoa(row.L2Days),
					strconv.Itoa(row.RampPct),
					rowStatus(row),
					formatIntervals(sprint.Absences[row.Name]),
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

func writeAbsenceTables(w io.Writer, report *schema.TeamReport) error {
	fmt.Fprintf(w, "Absences and availability for %s\n", report.Team.Name)

	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		fmt.Fprintf(w, "\n%s\n", sprintHeading(sprint.Window))

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Member", "Actual", "Effective", "Holidays", "L1", "L2", "Status"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, row := range sprint.Capacity.Rows {
			data = append(data, []string{
				row.Name,
				strconv.Itoa(row.ActualDays),
				strconv.Itoa(row.EffectiveDays),
				strconv.Itoa(row.HolidayCount),
				strconv.Itoa(row.L1Days),
				strconv.Itoa(row.L2Days),
				rowStatus(row),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		for _, name := range sortedNames(sprint.Absences) {
			fmt.Fprintf(w, "  %s: %s\n", name, formatIntervals(sprint.Absences[name]))
		}
	}
	return nil
}

// rowStatus summarizes the member's sprint situation in one word.
func rowStatus(row schema.AvailabilityRow) string {
	switch {
	case row.Excluded:
		return "excluded"
	case row.Leaving:
		return "leaving"
	case row.Joined && row.Ramping:
		return fmt.Sprintf("joined @%d%%", row.RampPct)
	case row.Ramping:
		return fmt.Sprintf("ramping @%d%%", row.RampPct)
	case row.Joined:
		return "joined"
	default:
		return "ok"
	}
}

func formatIntervals(intervals []schema.AbsenceInterval) string {
	parts := make([]string, 0, len(intervals))
	for _, interval := range intervals {
		parts = append(parts, interval.String())
	}
	return strings.Join(parts, ", ")
}
