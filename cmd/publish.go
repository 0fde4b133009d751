package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brdge/sprintplan/internal/bankhol"
	"github.com/brdge/sprintplan/internal/chat"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/outwriter"
	"github.com/brdge/sprintplan/schema"
)

// publishCmd pushes the team's reports to its chat canvases.
var publishCmd = &cobra.Command{
	Use:   "publish <team>",
	Short: "Publish capacity, absence and support reports to chat canvases.",
	Long: `Render the capacity (with calendar), absences (with warnings, people of
interest and bank holidays) and support (L1/L2 with warnings) reports as
markdown and push them to the team's configured chat canvases.

Canvases without a configured ID are skipped. Publishing requires the
chat-url and chat-api-token settings.

Examples:
  sprintplan publish bridge
  SPRINTPLAN_CHAT_API_TOKEN=... sprintplan publish bridge --sprints 2`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report, _, err := runTeamReport()
		if err != nil {
			contract.LogFatal("Cannot build reports for publishing", err)
		}
		if err := publishCanvases(report); err != nil {
			contract.LogFatal("Cannot publish canvases", err)
		}
	},
}

// publishCanvases renders and pushes every canvas the team has configured.
func publishCanvases(report *schema.TeamReport) error {
	team := report.Team
	if team.CapacityCanvas == "" && team.AbsencesCanvas == "" && team.SupportCanvas == "" {
		return fmt.Errorf("team %s has no chat canvases configured", team.Name)
	}

	client := chat.NewClient(cfg)
	conflicts := collectConflicts(report)
	published := 0

	if team.CapacityCanvas != "" {
		content := outwriter.RenderCapacityCanvas(report, buildGrids(report), cfg)
		if err := client.UpdateCanvas(rootCtx, team.CapacityCanvas, content); err != nil {
			return fmt.Errorf("capacity canvas: %w", err)
		}
		published++
	}

	if team.AbsencesCanvas != "" {
		cal := bankhol.New()
		start := cfg.ReferenceDate()
		holidays := make(map[schema.Region][]schema.Holiday, len(cfg.Regions))
		for _, region := range cfg.Regions {
			holidays[region] = cal.Holidays(region, start, start.AddDate(1, 0, 0))
		}
		content := outwriter.RenderAbsencesCanvas(report, conflicts, holidays, cfg)
		if err := client.UpdateCanvas(rootCtx, team.AbsencesCanvas, content); err != nil {
			return fmt.Errorf("absences canvas: %w", err)
		}
		published++
	}

	if team.SupportCanvas != "" {
		content := outwriter.RenderSupportCanvas(report, conflicts, cfg)
		if err := client.UpdateCanvas(rootCtx, team.SupportCanvas, content); err != nil {
			return fmt.Errorf("support canvas: %w", err)
		}
		published++
	}

	fmt.Printf("Published %d canvases for %s.\n", published, team.Name)
	return nil
}
