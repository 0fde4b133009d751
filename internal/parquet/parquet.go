// Package parquet provides data structures and functions for exporting
// capacity reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/brdge/sprintplan/schema"
)

// CapacityRow represents one member's availability in one sprint, flattened
// for columnar export.
type CapacityRow struct {
	// Team is the team name the row belongs to
	Team string `parquet:"team,snappy"`

	// SprintNumber is the sequential sprint number
	SprintNumber int32 `parquet:"sprint_number,snappy"`

	// SprintStart is the first calendar day of the sprint
	SprintStart string `parquet:"sprint_start,snappy"`

	// SprintEnd is the last calendar day of the sprint
	SprintEnd string `parquet:"sprint_end,snappy"`

	// Member is the member display name
	Member string `parquet:"member,snappy"`

	// ActualDays is the unramped available day count
	ActualDays int32 `parquet:"actual_days,snappy"`

	// EffectiveDays is the ramp-adjusted day count contributing to totals
	EffectiveDays int32 `parquet:"effective_days,snappy"`

	// HolidayDays is the absence day count inside the sprint
	HolidayDays int32 `parquet:"holiday_days,snappy"`

	// L1Days is the L1 duty day count inside the sprint
	L1Days int32 `parquet:"l1_days,snappy"`

	// L2Days is the L2 duty day count inside the sprint
	L2Days int32 `parquet:"l2_days,snappy"`

	// RampPct is the ramp multiplier percentage (100 when not ramping)
	RampPct int32 `parquet:"ramp_pct,snappy"`

	// Excluded marks members fully outside the sprint
	Excluded bool `parquet:"excluded,snappy"`
}

// ConvertTeamReport flattens a team report into per-member capacity rows.
func ConvertTeamReport(report *schema.TeamReport) []CapacityRow {
	var rows []CapacityRow
	for _, sprint := range report.Sprints {
		for _, row := range sprint.Capacity.Rows {
			rows = append(rows, CapacityRow{
				Team:          report.Team.Name,
				SprintNumber:  int32(sprint.Window.Number),
				SprintStart:   schema.FormatDate(sprint.Window.Start),
				SprintEnd:     schema.FormatDate(sprint.Window.End),
				Member:        row.Name,
				ActualDays:    int32(row.ActualDays),
				EffectiveDays: int32(row.EffectiveDays),
				HolidayDays:   int32(row.HolidayCount),
				L1Days:        int32(row.L1Days),
				L2Days:        int32(row.L2Days),
				RampPct:       int32(row.RampPct),
				Excluded:      row.Excluded,
			})
		}
	}
	return rows
}

// WriteCapacityParquet writes capacity rows to a Parquet file.
func WriteCapacityParquet(data []CapacityRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the CapacityRow struct tags
	writer := parquet.NewGenericWriter[CapacityRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
