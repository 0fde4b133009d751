// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCapacity prints the per-sprint capacity summary using the configured output format.
func (ow *OutWriter) WriteCapacity(report *schema.TeamReport, cfg *contract.Config, duration time.Duration) error {
	return WriteCapacityReport(report, cfg, duration)
}

// WriteAbsences prints the per-sprint absence listing using the configured output format.
func (ow *OutWriter) WriteAbsences(report *schema.TeamReport, cfg *contract.Config) error {
	return WriteAbsenceReport(report, cfg)
}

// WriteOnCall prints the per-sprint on-call duty listing using the configured output format.
func (ow *OutWriter) WriteOnCall(report *schema.TeamReport, cfg *contract.Config) error {
	return WriteOnCallReport(report, cfg)
}

// WriteInterest prints the people-of-interest absence listing.
func (ow *OutWriter) WriteInterest(report *schema.TeamReport, cfg *contract.Config) error {
	return WriteInterestReport(report, cfg)
}

// WriteFull prints all report sections in sequence.
func (ow *OutWriter) WriteFull(report *schema.TeamReport, cfg *contract.Config, duration time.Duration) error {
	return WriteFullReport(report, cfg, duration)
}

// WriteCalendar prints the day-by-member sprint grids.
func (ow *OutWriter) WriteCalendar(report *schema.TeamReport, grids []core.Grid, cfg *contract.Config) error {
	return WriteCalendarReport(report, grids, cfg)
}

// WriteRota prints the duty rota for a year.
func (ow *OutWriter) WriteRota(entries []core.RotaEntry, year int, cfg *contract.Config) error {
	return WriteRotaReport(entries, year, cfg)
}

// WriteBankHolidays prints the bank holidays per region.
func (ow *OutWriter) WriteBankHolidays(holidays map[schema.Region][]schema.Holiday, cfg *contract.Config) error {
	return WriteBankHolidayReport(holidays, cfg)
}

// WriteWarnings prints absence/on-call conflicts per sprint.
func (ow *OutWriter) WriteWarnings(report *schema.TeamReport, conflicts map[int][]core.Conflict, cfg *contract.Config) error {
	return WriteWarningReport(report, conflicts, cfg)
}
