package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/outwriter"
	"github.com/brdge/sprintplan/schema"
)

// rotaCmd exports a full year of on-call duty.
var rotaCmd = &cobra.Command{
	Use:   "rota <team>",
	Short: "Export the team's on-call rota for a full year.",
	Long: `Fetch every L1 and L2 duty assignment for a calendar year and flatten
them into a date-ordered rota, with divisions resolved from the employee
directory.

Examples:
  # Current year, CSV for the spreadsheet crowd
  sprintplan rota bridge --output csv --output-file rota.csv

  # A specific year
  sprintplan rota bridge --year 2025`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		entries, year, err := buildYearRota()
		if err != nil {
			contract.LogFatal("Cannot build rota", err)
		}
		if err := outwriter.NewOutWriter().WriteRota(entries, year, cfg); err != nil {
			contract.LogFatal("Cannot write rota", err)
		}
	},
}

// buildYearRota fetches a calendar year of duty dates for the selected team
// and resolves divisions from the HR directory.
func buildYearRota() ([]core.RotaEntry, int, error) {
	team, err := selectedTeam()
	if err != nil {
		return nil, 0, err
	}

	year := cfg.Year
	if year == 0 {
		year = cfg.ReferenceDate().Year()
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	src := newSources()
	directory, err := src.HR.Directory(rootCtx)
	if err != nil {
		return nil, 0, err
	}

	fetch := func(rotationID string) (map[string][]time.Time, error) {
		if rotationID == "" {
			return map[string][]time.Time{}, nil
		}
		return src.OnCall.Shifts(rootCtx, rotationID, start, end)
	}
	l1, err := fetch(team.L1Rotation)
	if err != nil {
		return nil, 0, err
	}
	l2, err := fetch(team.L2Rotation)
	if err != nil {
		return nil, 0, err
	}

	return core.BuildRota(remapToDisplay(team, l1), remapToDisplay(team, l2), directory), year, nil
}

// remapToDisplay converts on-call system names to roster display names,
// keeping unknown names as-is so the rota stays complete.
func remapToDisplay(team *schema.Team, duties map[string][]time.Time) map[string][]time.Time {
	displayByOnCall := make(map[string]string, len(team.Members))
	for i := range team.Members {
		displayByOnCall[team.Members[i].OnCallName] = team.Members[i].Name
	}
	out := make(map[string][]time.Time, len(duties))
	for name, dates := range duties {
		if display, ok := displayByOnCall[name]; ok {
			name = display
		}
		out[name] = dates
	}
	return out
}
