package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// WriteWarningReport outputs absence/on-call conflicts keyed by sprint number.
func WriteWarningReport(report *schema.TeamReport, conflicts map[int][]core.Conflict, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, conflicts)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWarningCSV(w, report, conflicts)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWarningText(w, report, conflicts)
		}, "Wrote warnings")
	}
}

func writeWarningCSV(w io.Writer, report *schema.TeamReport, conflicts map[int][]core.Conflict) error {
	header := []string{"sprint", "member", "date", "tier"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, sprint := range report.Sprints {
			for _, c := range conflicts[sprint.Window.Number] {
				record := []string{
					fmt.Sprintf("%d", sprint.Window.Number),
					c.Name,
					schema.FormatDate(c.Date),
					strings.ToUpper(string(c.Tier)),
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

func writeWarningText(w io.Writer, report *schema.TeamReport, conflicts map[int][]core.Conflict) error {
	total := 0
	for _, sprint := range report.Sprints {
		list := conflicts[sprint.Window.Number]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\n", sprintHeading(sprint.Window))
		for _, c := range list {
			fmt.Fprintf(w, "  ! %s is on %s duty on %s but is absent\n",
				c.Name, strings.ToUpper(string(c.Tier)), schema.FormatDate(c.Date))
		}
		total += len(list)
	}
	if total == 0 {
		fmt.Fprintln(w, "No absence/on-call conflicts found.")
	}
	return nil
}
