package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brdge/sprintplan/internal/bankhol"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/outwriter"
	"github.com/brdge/sprintplan/schema"
)

// bankholsCmd lists upcoming public holidays.
var bankholsCmd = &cobra.Command{
	Use:   "bankhols",
	Short: "Show public holidays for the next twelve months.",
	Long: `List the public holidays for the configured regions over the next
twelve months. Supported regions are the GB subdivisions (ENG, SCT, WLS,
NIR) and Ireland (IE); GB holidays include weekend substitutions.

Examples:
  # All regions
  sprintplan bankhols

  # Scotland and Ireland only
  sprintplan bankhols --regions SCT,IE`,
	PreRunE: configOnlySetup,
	Run: func(_ *cobra.Command, _ []string) {
		cal := bankhol.New()
		start := cfg.ReferenceDate()
		end := start.AddDate(1, 0, 0)

		holidays := make(map[schema.Region][]schema.Holiday, len(cfg.Regions))
		for _, region := range cfg.Regions {
			holidays[region] = cal.Holidays(region, start, end)
		}

		if err := outwriter.NewOutWriter().WriteBankHolidays(holidays, cfg); err != nil {
			contract.LogFatal("Cannot write bank holidays", err)
		}
	},
}
