package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// WriteInterestReport outputs absences of tracked non-members (the manager
// and the configured people of interest).
func WriteInterestReport(report *schema.TeamReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"sprint", "name", "absences"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for i := range report.Sprints {
					sprint := &report.Sprints[i]
					for _, name := range sortedNames(sprint.POIAbsences) {
						record := []string{
							strconv.Itoa(sprint.Window.Number),
							name,
							formatIntervals(sprint.POIAbsences[name]),
						}
						if err := cw.Write(record); err != nil {
							return fmt.Errorf("failed to write CSV record: %w", err)
						}
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeInterestText(w, report)
		}, "Wrote table")
	}
}

func writeInterestText(w io.Writer, report *schema.TeamReport) error {
	fmt.Fprintf(w, "People of interest for %s\n", report.Team.Name)
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		fmt.Fprintf(w, "\n%s\n", sprintHeading(sprint.Window))
		if len(sprint.POIAbsences) == 0 {
			fmt.Fprintln(w, "  no absences")
			continue
		}
		for _, name := range sortedNames(sprint.POIAbsences) {
			fmt.Fprintf(w, "  %s: %s\n", name, formatIntervals(sprint.POIAbsences[name]))
		}
	}
	return nil
}
