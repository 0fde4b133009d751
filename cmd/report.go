package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/outwriter"
)

// capacityCmd computes per-sprint team capacity.
var capacityCmd = &cobra.Command{
	Use:   "capacity <team>",
	Short: "Show per-sprint team capacity in story points.",
	Long: `Compute per-sprint capacity for a team from absences, on-call duty and
scheduled epics.

For each sprint this reports:
- Total available team days after absences, on-call duty and ramp-up
- Point capacity split between engineering and product work
- Scheduled epic totals from the issue tracker
- A load label (IDLE, HEALTHY, TIGHT, OVER) comparing scheduled vs capacity

Examples:
  # Capacity for the next three sprints
  sprintplan capacity bridge

  # Six sprints, starting two sprints back
  sprintplan capacity bridge --sprints 6 --sprints-back 2

  # Export to parquet for analytics
  sprintplan capacity bridge --output parquet --output-file capacity.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report, duration, err := runTeamReport()
		if err != nil {
			contract.LogFatal("Cannot build capacity report", err)
		}
		if err := outwriter.NewOutWriter().WriteCapacity(report, cfg, duration); err != nil {
			contract.LogFatal("Cannot write capacity report", err)
		}
	},
}

// absencesCmd lists per-member availability and absences.
var absencesCmd = &cobra.Command{
	Use:   "absences <team>",
	Short: "Show per-member absences and availability per sprint.",
	Long: `List every roster member's absences and resulting availability for each
sprint, including on-call days, ramp-up discounts and joiner/leaver status.

Examples:
  # Absences for the next three sprints
  sprintplan absences bridge

  # Machine-readable export
  sprintplan absences bridge --output csv --output-file absences.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report, _, err := runTeamReport()
		if err != nil {
			contract.LogFatal("Cannot build absence report", err)
		}
		if err := outwriter.NewOutWriter().WriteAbsences(report, cfg); err != nil {
			contract.LogFatal("Cannot write absence report", err)
		}
	},
}

// oncallCmd lists per-sprint L1/L2 on-call duty.
var oncallCmd = &cobra.Command{
	Use:   "oncall <team>",
	Short: "Show L1/L2 on-call duty per sprint.",
	Long: `List each sprint's L1 and L2 on-call assignments for the team's members,
with duty dates collapsed into ranges.

Examples:
  sprintplan oncall bridge
  sprintplan oncall bridge --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report, _, err := runTeamReport()
		if err != nil {
			contract.LogFatal("Cannot build on-call report", err)
		}
		if err := outwriter.NewOutWriter().WriteOnCall(report, cfg); err != nil {
			contract.LogFatal("Cannot write on-call report", err)
		}
	},
}

// interestCmd lists absences for people of interest.
var interestCmd = &cobra.Command{
	Use:   "interest <team>",
	Short: "Show absences for the team's people of interest.",
	Long: `List per-sprint absences for the team's manager and other people of
interest. These absences are tracked for information only and never count
toward capacity.

Examples:
  sprintplan interest bridge`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report, _, err := runTeamReport()
		if err != nil {
			contract.LogFatal("Cannot build interest report", err)
		}
		if err := outwriter.NewOutWriter().WriteInterest(report, cfg); err != nil {
			contract.LogFatal("Cannot write interest report", err)
		}
	},
}

// fullCmd prints every report section in sequence.
var fullCmd = &cobra.Command{
	Use:   "full <team>",
	Short: "Show the combined capacity, absence and on-call report.",
	Long: `Print the capacity summary followed by per-sprint absence, on-call and
people-of-interest sections in one pass.

Examples:
  sprintplan full bridge
  sprintplan full bridge --sprints 2`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report, duration, err := runTeamReport()
		if err != nil {
			contract.LogFatal("Cannot build full report", err)
		}
		if err := outwriter.NewOutWriter().WriteFull(report, cfg, duration); err != nil {
			contract.LogFatal("Cannot write full report", err)
		}
	},
}
