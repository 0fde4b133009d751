package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// WriteBankHolidayReport outputs the public holidays per region.
func WriteBankHolidayReport(holidays map[schema.Region][]schema.Holiday, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, holidays)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBankHolidayCSV(w, holidays, cfg.Regions)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBankHolidayTables(w, holidays, cfg.Regions)
		}, "Wrote table")
	}
}

func writeBankHolidayCSV(w io.Writer, holidays map[schema.Region][]schema.Holiday, regions []schema.Region) error {
	header := []string{"region", "date", "name"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, region := range regions {
			for _, hol := range holidays[region] {
				record := []string{string(region), schema.FormatDate(hol.Date), hol.Name}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

func writeBankHolidayTables(w io.Writer, holidays map[schema.Region][]schema.Holiday, regions []schema.Region) error {
	for i, region := range regions {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", regionName(region))

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Date", "Day", "Holiday"})

		var data [][]string
		for _, hol := range holidays[region] {
			data = append(data, []string{
				schema.FormatDate(hol.Date),
				hol.Date.Weekday().String(),
				hol.Name,
			})
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

func regionName(region schema.Region) string {
	switch region {
	case schema.RegionEngland:
		return "England"
	case schema.RegionScotland:
		return "Scotland"
	case schema.RegionWales:
		return "Wales"
	case schema.RegionNIreland:
		return "Northern Ireland"
	case schema.RegionIreland:
		return "Ireland"
	default:
		return string(region)
	}
}
