package core

import (
	"time"

	"github.com/brdge/sprintplan/schema"
)

// SprintStart returns the start date of the sprint containing the given day.
// Sprints always start on a Monday. The correct Monday is chosen by an ISO
// week parity rule: take the next Monday strictly after d; if its ISO week
// number is even the sprint started 14 days before it, otherwise 7 days
// before. ISO week numbering (week 1 contains the first Thursday of the
// year) keeps the rule stable across year boundaries.
func SprintStart(d time.Time) time.Time {
	day := schema.Day(d)
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	nextMonday := day.AddDate(0, 0, offset)
	_, week := nextMonday.ISOWeek()
	if week%2 == 0 {
		return nextMonday.AddDate(0, 0, -schema.SprintLengthDays)
	}
	return nextMonday.AddDate(0, 0, -7)
}

// Calendar numbers sprints relative to a single configured anchor: a known
// (sprint start date, sprint number) pair. Sprint numbers increment by one
// every 14 days; starts earlier than the anchor get smaller numbers, which
// may be negative when the anchor lies far in the future.
type Calendar struct {
	AnchorDate   time.Time // A known sprint start (Monday)
	AnchorNumber int       // The sprint number of AnchorDate
}

// Number returns the sprint number for a sprint start date.
//
// The result is only meaningful when start is a sprint-aligned Monday as
// produced by SprintStart or Enumerate; passing an arbitrary date is a
// caller contract violation, not a runtime fault.
func (c Calendar) Number(start time.Time) int {
	days := int(schema.Day(start).Sub(schema.Day(c.AnchorDate)).Hours() / 24)
	return c.AnchorNumber + floorDiv(days, schema.SprintLengthDays)
}

// Enumerate returns count consecutive sprint windows beginning at first.
// Each window spans 14 calendar days inclusive; windows are gapless, with
// each start exactly one day after the previous end.
func (c Calendar) Enumerate(first time.Time, count int) []schema.SprintWindow {
	windows := make([]schema.SprintWindow, 0, count)
	start := schema.Day(first)
	for range count {
		windows = append(windows, schema.SprintWindow{
			Number: c.Number(start),
			Start:  start,
			End:    start.AddDate(0, 0, schema.SprintLengthDays-1),
		})
		start = start.AddDate(0, 0, schema.SprintLengthDays)
	}
	return windows
}

// floorDiv divides a by b rounding toward negative infinity, so pre-anchor
// sprint starts number correctly.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
