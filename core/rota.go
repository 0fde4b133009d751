package core

import (
	"sort"
	"time"

	"github.com/brdge/sprintplan/schema"
)

// RotaEntry is one duty assignment in the year-end rota export.
type RotaEntry struct {
	Date     time.Time
	Name     string
	Tier     schema.RotationTier
	Division string // From the employee directory; empty when unresolved
}

// BuildRota flattens a year's worth of duty maps into a date-ordered rota.
// Ties on date sort L1 before L2, then by name. The division lookup is
// keyed by display name and is best-effort.
func BuildRota(l1, l2 map[string][]time.Time, directory []schema.DirectoryEntry) []RotaEntry {
	divisions := make(map[string]string, len(directory))
	for _, entry := range directory {
		divisions[entry.Name] = entry.Division
	}

	var out []RotaEntry
	appendTier := func(duties map[string][]time.Time, tier schema.RotationTier) {
		for name, dates := range duties {
			for _, d := range dates {
				out = append(out, RotaEntry{
					Date:     schema.Day(d),
					Name:     name,
					Tier:     tier,
					Division: divisions[name],
				})
			}
		}
	}
	appendTier(l1, schema.TierL1)
	appendTier(l2, schema.TierL2)

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].Name < out[j].Name
	})
	return out
}
