package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/bankhol"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/outwriter"
	"github.com/brdge/sprintplan/schema"
)

// calendarCmd renders the day-by-member availability grids.
var calendarCmd = &cobra.Command{
	Use:   "calendar <team>",
	Short: "Show a day-by-member availability grid per sprint.",
	Long: `Render each sprint as a calendar grid with one row per member and one
column per day, marking absences (X), on-call duty (L1/L2), bank holidays
(BH), company socials (S) and days the member is not on the team (-).

Examples:
  sprintplan calendar bridge
  sprintplan calendar bridge --sprints 1 --width 140`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report, _, err := runTeamReport()
		if err != nil {
			contract.LogFatal("Cannot build calendar report", err)
		}
		grids := buildGrids(report)
		if err := outwriter.NewOutWriter().WriteCalendar(report, grids, cfg); err != nil {
			contract.LogFatal("Cannot write calendar report", err)
		}
	},
}

// buildGrids lays every sprint of the report out as a calendar matrix, with
// bank holidays pooled across the configured regions.
func buildGrids(report *schema.TeamReport) []core.Grid {
	cal := bankhol.New()
	grids := make([]core.Grid, 0, len(report.Sprints))
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		var holidays []schema.Holiday
		for _, region := range cfg.Regions {
			holidays = append(holidays, cal.Holidays(region, sprint.Window.Start, sprint.Window.End)...)
		}
		grids = append(grids, core.BuildGrid(report.Team, sprint, holidays))
	}
	return grids
}
