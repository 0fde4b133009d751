package core

import (
	"time"

	"github.com/brdge/sprintplan/schema"
)

// FilterIntervals narrows a name-keyed absence map to the intervals that
// overlap the sprint window. Names with no overlapping intervals are omitted
// from the result entirely.
func FilterIntervals(absences map[string][]schema.AbsenceInterval, w schema.SprintWindow) map[string][]schema.AbsenceInterval {
	out := make(map[string][]schema.AbsenceInterval)
	for name, intervals := range absences {
		for _, interval := range intervals {
			if interval.Overlaps(w) {
				out[name] = append(out[name], interval)
			}
		}
	}
	return out
}

// FilterDates narrows a name-keyed duty date map to the dates inside the
// sprint window. Names with no dates in the window are omitted.
func FilterDates(duties map[string][]time.Time, w schema.SprintWindow) map[string][]time.Time {
	out := make(map[string][]time.Time)
	for name, dates := range duties {
		for _, d := range dates {
			if w.Contains(schema.Day(d)) {
				out[name] = append(out[name], schema.Day(d))
			}
		}
	}
	return out
}

// SocialInWindow returns the first social date falling inside the sprint
// window, or the zero time when none does.
func SocialInWindow(socials []time.Time, w schema.SprintWindow) time.Time {
	for _, s := range socials {
		if w.Contains(schema.Day(s)) {
			return schema.Day(s)
		}
	}
	return time.Time{}
}
