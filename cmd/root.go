package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/iocache"
	"github.com/brdge/sprintplan/internal/roster"
	"github.com/brdge/sprintplan/internal/sources"
	"github.com/brdge/sprintplan/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// teams holds the loaded roster, populated by sharedSetup.
var teams *roster.Roster

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "sprintplan",
	Short:              "Compute sprint availability and capacity for your teams.",
	Long:               `Sprintplan combines HR absences, on-call schedules and scheduled epics into per-sprint capacity reports.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".sprintplan") // Name of config file (without extension)
		viper.SetConfigType("yaml")        // We'll use YAML format
		viper.AddConfigPath(".")           // Look in the current directory
		viper.AddConfigPath("$HOME")       // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("SPRINTPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("roster", "teams.yaml")
	viper.SetDefault("sprints", contract.DefaultSprints)
	viper.SetDefault("sprints-back", contract.DefaultSprintsBack)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("cache-ttl", "")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config, runs validation, loads the roster and
// initializes the cache layer.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.TeamNameStr = args[0]
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 5. Load the roster with validated config.
	loaded, err := roster.Load(cfg.RosterPath)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	teams = loaded

	// 6. Initialize the response cache with validated config.
	if err := iocache.InitCaching(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// configOnlySetup resolves and validates configuration without touching the
// roster or the cache. Used by commands that need neither.
func configOnlySetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return contract.ProcessAndValidate(cfg, input)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	// Handle config file
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".sprintplan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// newSources builds the external data providers from the validated config,
// all sharing the response cache store.
func newSources() core.Sources {
	store := iocache.Manager.GetResponseStore()
	return core.Sources{
		HR:      sources.NewHRClient(cfg, store),
		OnCall:  sources.NewOnCallClient(cfg, store),
		Tracker: sources.NewTrackerClient(cfg, store),
	}
}

// selectedTeam resolves the team named on the command line.
func selectedTeam() (*schema.Team, error) {
	if cfg.TeamName == "" {
		return nil, fmt.Errorf("a team name is required (valid teams: %s)", strings.Join(teams.Names(), ", "))
	}
	return teams.TeamByName(cfg.TeamName)
}

// runTeamReport resolves the team and runs the orchestrator, timing the run.
func runTeamReport() (*schema.TeamReport, time.Duration, error) {
	team, err := selectedTeam()
	if err != nil {
		return nil, 0, err
	}
	start := time.Now()
	report, err := core.BuildTeamReport(rootCtx, team, newSources(), core.NewPlanConfig(cfg))
	if err != nil {
		return nil, 0, err
	}
	return report, time.Since(start), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
