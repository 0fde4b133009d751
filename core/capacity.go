package core

import (
	"sort"

	"github.com/brdge/sprintplan/schema"
)

// Aggregate rolls the per-member availability rows for one sprint up into
// team totals and derived point capacity. Excluded rows are kept in the
// result for completeness but contribute nothing to any total. Rows are
// sorted by display name so output is deterministic.
func Aggregate(rows []schema.AvailabilityRow, team *schema.Team, epicTotal float64) schema.SprintCapacity {
	sorted := make([]schema.AvailabilityRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	agg := schema.SprintCapacity{
		Rows:           sorted,
		ScheduledEpics: epicTotal,
	}
	for _, row := range sorted {
		if member := team.MemberByName(row.Name); member != nil {
			if row.Joined {
				agg.Starters = append(agg.Starters, schema.MemberEvent{Name: row.Name, Date: member.StartDate})
			}
			if row.Leaving {
				agg.Leavers = append(agg.Leavers, schema.MemberEvent{Name: row.Name, Date: member.LeaveDate})
			}
		}
		if row.Excluded {
			continue
		}
		agg.TotalTeamDays += row.EffectiveDays
		agg.TotalHolidays += row.HolidayCount
		if row.Ramping {
			agg.Ramping = append(agg.Ramping, schema.RampNote{Name: row.Name, Pct: row.RampPct})
		}
	}

	agg.Points = float64(agg.TotalTeamDays) * team.LoadFactor * team.PointCapacity
	agg.EngPoints = agg.Points * team.EngineeringSplit
	agg.ProdPoints = agg.Points - agg.EngPoints
	return agg
}
