package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// WriteCalendarReport outputs the day-by-member grid for each sprint.
func WriteCalendarReport(report *schema.TeamReport, grids []core.Grid, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, grids)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCalendarCSV(w, grids)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCalendarTables(w, report, grids, cfg)
		}, "Wrote table")
	}
}

func writeCalendarCSV(w io.Writer, grids []core.Grid) error {
	header := []string{"sprint", "member", "date", "cell"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, grid := range grids {
			for _, row := range grid.Rows {
				for i, cell := range row.Cells {
					record := []string{
						strconv.Itoa(grid.Window.Number),
						row.Name,
						schema.FormatDate(grid.Days[i]),
						cell,
					}
					if err := cw.Write(record); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
			}
		}
		return nil
	})
}

func writeCalendarTables(w io.Writer, report *schema.TeamReport, grids []core.Grid, cfg *contract.Config) error {
	fmt.Fprintf(w, "Calendar for %s\n", report.Team.Name)
	fmt.Fprintln(w, "X absent / L1,L2 on-call / BH bank holiday / S social / - not on team / . weekend")

	maxName := maxNameWidth(cfg)
	for _, grid := range grids {
		fmt.Fprintf(w, "\n%s\n", sprintHeading(grid.Window))

		table := tablewriter.NewWriter(w)
		// Two header cells per day keeps the columns narrow: weekday letter
		// over day of month.
		headers := []string{"Member"}
		for _, d := range grid.Days {
			headers = append(headers, fmt.Sprintf("%s %d", d.Weekday().String()[:2], d.Day()))
		}
		table.Header(headers)

		var data [][]string
		for _, row := range grid.Rows {
			record := []string{contract.TruncateName(row.Name, maxName)}
			record = append(record, row.Cells...)
			data = append(data, record)
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

// maxNameWidth bounds the member column so a 14-day grid still fits the
// terminal.
func maxNameWidth(cfg *contract.Config) int {
	// 14 day columns at ~6 chars each with borders.
	available := getTerminalWidth(cfg) - 14*6
	if available < 8 {
		return 8
	}
	if available > 24 {
		return 24
	}
	return available
}
