package schema

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateFormat is the calendar date representation used across all
// configuration files, external APIs and rendered output.
const DateFormat = "2006-01-02"

// ParseDate parses a calendar date in DateFormat into a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected %s): %w", s, DateFormat, err)
	}
	return t, nil
}

// Day normalizes an instant to its UTC calendar day. All date arithmetic in
// the engine operates on normalized days so that map keys compare equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a day in DateFormat.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// IsWeekday reports whether the day is Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WeekdayCount returns the number of weekdays in [from, to] inclusive.
// Returns 0 when to is before from.
func WeekdayCount(from, to time.Time) int {
	count := 0
	for d := Day(from); !d.After(Day(to)); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			count++
		}
	}
	return count
}

// DaySet is a set of normalized calendar days.
type DaySet map[time.Time]struct{}

// NewDaySet builds a set from the given days, normalizing each one.
func NewDaySet(days ...time.Time) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s.Add(d)
	}
	return s
}

// Add inserts a day into the set.
func (s DaySet) Add(d time.Time) { s[Day(d)] = struct{}{} }

// Has reports whether the day is in the set.
func (s DaySet) Has(d time.Time) bool {
	_, ok := s[Day(d)]
	return ok
}

// Dates returns the days in the set in chronological order.
func (s DaySet) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// FormatDateRanges collapses a list of days into a compact comma-separated
// string where consecutive days become "start - end" ranges.
func FormatDateRanges(dates []time.Time) string {
	if len(dates) == 0 {
		return ""
	}
	sorted := make([]time.Time, len(dates))
	for i, d := range dates {
		sorted[i] = Day(d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var ranges []string
	flush := func(start, end time.Time) {
		if start.Equal(end) {
			ranges = append(ranges, FormatDate(start))
		} else {
			ranges = append(ranges, fmt.Sprintf("%s - %s", FormatDate(start), FormatDate(end)))
		}
	}
	start, end := sorted[0], sorted[0]
	for _, d := range sorted[1:] {
		if d.Equal(end) {
			continue
		}
		if d.Sub(end) == 24*time.Hour {
			end = d
			continue
		}
		flush(start, end)
		start, end = d, d
	}
	flush(start, end)
	return strings.Join(ranges, ", ")
}

// String renders an absence interval, collapsing single-day intervals to a
// bare date.
func (a AbsenceInterval) String() string {
	if a.Start.Equal(a.End) {
		return FormatDate(a.Start)
	}
	return fmt.Sprintf("%s - %s", FormatDate(a.Start), FormatDate(a.End))
}

// ExpandWeekdays returns the weekday dates covered by the interval that also
// fall inside the sprint window.
func (a AbsenceInterval) ExpandWeekdays(w SprintWindow) []time.Time {
	var days []time.Time
	for d := Day(a.Start); !d.After(Day(a.End)); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) && w.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// ExpandDays returns every date covered by the interval, weekends included.
// Used for absence/on-call conflict matching where on-call dates are already
// weekday-restricted upstream.
func (a AbsenceInterval) ExpandDays() []time.Time {
	var days []time.Time
	for d := Day(a.Start); !d.After(Day(a.End)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
