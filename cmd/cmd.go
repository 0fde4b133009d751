// Package cmd defines the command-line interface for sprintplan.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(capacityCmd)
	rootCmd.AddCommand(absencesCmd)
	rootCmd.AddCommand(oncallCmd)
	rootCmd.AddCommand(interestCmd)
	rootCmd.AddCommand(fullCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(warningsCmd)
	rootCmd.AddCommand(rotaCmd)
	rootCmd.AddCommand(bankholsCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("roster", "teams.yaml", "Path to the team roster YAML file")
	rootCmd.PersistentFlags().IntP("sprints", "s", contract.DefaultSprints, "Number of sprints to report on")
	rootCmd.PersistentFlags().Int("sprints-back", contract.DefaultSprintsBack, "Shift the sprint range this many sprints into the past")
	rootCmd.PersistentFlags().String("today", "", "Reference date override in YYYY-MM-DD (defaults to wall clock)")
	rootCmd.PersistentFlags().String("anchor-date", "", "Sprint numbering anchor date (a sprint-start Monday)")
	rootCmd.PersistentFlags().Int("anchor-number", 0, "Sprint number assigned to the anchor date")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("cache-ttl", "", "Maximum age of cached upstream responses (e.g., 8h, 30m)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rotaCmd to Viper
	rotaCmd.Flags().Int("year", 0, "Target year for the rota export (0 = current year)")
	if err := viper.BindPFlags(rotaCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rota flags", err)
	}

	// Bind all flags of bankholsCmd to Viper
	bankholsCmd.Flags().String("regions", "", "Comma-separated holiday regions (ENG,SCT,WLS,NIR,IE; empty = all)")
	if err := viper.BindPFlags(bankholsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding bankhols flags", err)
	}
}
