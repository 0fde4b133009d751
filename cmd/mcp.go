package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brdge/sprintplan/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Sprintplan MCP server",
	Long:  `Launch an MCP server that allows AI agents to query sprint capacity, absences and on-call duty via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio is reserved for the protocol, so nothing may print during setup.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, teams, newSources())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
