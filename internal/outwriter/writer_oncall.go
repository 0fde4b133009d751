package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// WriteOnCallReport outputs the per-sprint duty listing, dispatching based
// on the output format configured.
func WriteOnCallReport(report *schema.TeamReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOnCallCSV(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOnCallTables(w, report)
		}, "Wrote table")
	}
}

func writeOnCallCSV(w io.Writer, report *schema.TeamReport) error {
	header := []string{"sprint", "member", "tier", "dates"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		writeTier := func(sprint *schema.SprintReport, duties map[string][]time.Time, tier schema.RotationTier) error {
			for _, name := range sortedNames(duties) {
				record := []string{
					strconv.Itoa(sprint.Window.Number),
					name,
					string(tier),
					schema.FormatDateRanges(duties[name]),
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
			return nil
		}
		for i := range report.Sprints {
			sprint := &report.Sprints[i]
			if err := writeTier(sprint, sprint.L1, schema.TierL1); err != nil {
				return err
			}
			if err := writeTier(sprint, sprint.L2, schema.TierL2); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeOnCallTables(w io.Writer, report *schema.TeamReport) error {
	fmt.Fprintf(w, "On-call duty for %s\n", report.Team.Name)

	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		fmt.Fprintf(w, "\n%s\n", sprintHeading(sprint.Window))
		if len(sprint.L1) == 0 && len(sprint.L2) == 0 {
			fmt.Fprintln(w, "  no duty scheduled")
			continue
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Member", "Tier", "Dates"})

		var data [][]string
		for _, name := range sortedNames(sprint.L1) {
			data = append(data, []string{name, "L1", schema.FormatDateRanges(sprint.L1[name])})
		}
		for _, name := range sortedNames(sprint.L2) {
			data = append(data, []string{name, "L2", schema.FormatDateRanges(sprint.L2[name])})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}
