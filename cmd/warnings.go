package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/outwriter"
	"github.com/brdge/sprintplan/schema"
)

// warningsCmd flags absence/on-call collisions.
var warningsCmd = &cobra.Command{
	Use:   "warnings <team>",
	Short: "Flag on-call duty dates that collide with absences.",
	Long: `Check every sprint for members who hold an L1 or L2 on-call date while
also being recorded as absent, so the rotation can be swapped in time.

Examples:
  sprintplan warnings bridge
  sprintplan warnings bridge --output csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report, _, err := runTeamReport()
		if err != nil {
			contract.LogFatal("Cannot build warnings report", err)
		}
		conflicts := collectConflicts(report)
		if err := outwriter.NewOutWriter().WriteWarnings(report, conflicts, cfg); err != nil {
			contract.LogFatal("Cannot write warnings report", err)
		}
	},
}

// collectConflicts runs conflict detection for every sprint, keyed by sprint
// number.
func collectConflicts(report *schema.TeamReport) map[int][]core.Conflict {
	conflicts := make(map[int][]core.Conflict, len(report.Sprints))
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		if found := core.Conflicts(sprint); len(found) > 0 {
			conflicts[sprint.Window.Number] = found
		}
	}
	return conflicts
}
