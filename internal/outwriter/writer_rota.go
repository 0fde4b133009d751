package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// WriteRotaReport outputs the duty rota for one calendar year.
func WriteRotaReport(entries []core.RotaEntry, year int, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRotaCSV(w, entries)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRotaTable(w, entries, year)
		}, "Wrote table")
	}
}

func writeRotaCSV(w io.Writer, entries []core.RotaEntry) error {
	header := []string{"date", "name", "tier", "division"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range entries {
			record := []string{
				schema.FormatDate(e.Date),
				e.Name,
				strings.ToUpper(string(e.Tier)),
				e.Division,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeRotaTable(w io.Writer, entries []core.RotaEntry, year int) error {
	fmt.Fprintf(w, "On-call rota for %d\n\n", year)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Name", "Tier", "Division"})

	var data [][]string
	for _, e := range entries {
		data = append(data, []string{
			schema.FormatDate(e.Date),
			e.Name,
			strings.ToUpper(string(e.Tier)),
			e.Division,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d duty days\n", len(entries))
	return nil
}
