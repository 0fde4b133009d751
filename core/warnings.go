package core

import (
	"sort"
	"time"

	"github.com/brdge/sprintplan/schema"
)

// Conflict marks a day where a member is scheduled for on-call duty while
// also being absent. These are planning mistakes the rotation owner should
// resolve before the sprint starts.
type Conflict struct {
	Name string
	Date time.Time
	Tier schema.RotationTier
}

// Conflicts scans a sprint report for members whose absences collide with
// their on-call duty days. Results are sorted by date, then name, then tier.
func Conflicts(sprint *schema.SprintReport) []Conflict {
	absentDays := make(map[string]schema.DaySet, len(sprint.Absences))
	for name, intervals := range sprint.Absences {
		set := schema.NewDaySet()
		for _, interval := range intervals {
			for _, d := range interval.ExpandDays() {
				set.Add(d)
			}
		}
		absentDays[name] = set
	}

	var out []Conflict
	collect := func(duties map[string][]time.Time, tier schema.RotationTier) {
		for name, dates := range duties {
			set, ok := absentDays[name]
			if !ok {
				continue
			}
			for _, d := range dates {
				if set.Has(schema.Day(d)) {
					out = append(out, Conflict{Name: name, Date: schema.Day(d), Tier: tier})
				}
			}
		}
	}
	collect(sprint.L1, schema.TierL1)
	collect(sprint.L2, schema.TierL2)

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Tier < out[j].Tier
	})
	return out
}
