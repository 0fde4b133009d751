package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// WriteFullReport outputs every report section in sequence. Structured
// formats emit the whole report once; the text format concatenates the
// individual sections.
func WriteFullReport(report *schema.TeamReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut, schema.CSVOut, schema.ParquetOut:
		return WriteCapacityReport(report, cfg, duration)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			fmtFloat := createFormatter(cfg.Precision)
			if err := writeCapacityTable(w, report, cfg, fmtFloat, duration); err != nil {
				return err
			}
			fmt.Fprintln(w)
			if err := writeAbsenceTables(w, report); err != nil {
				return err
			}
			fmt.Fprintln(w)
			if err := writeOnCallTables(w, report); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return writeInterestText(w, report)
		}, "Wrote report")
	}
}
