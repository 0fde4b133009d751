package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/brdge/sprintplan/schema"
)

// Default values for configuration.
const (
	DefaultSprints     = 3
	MaxSprints         = 13
	DefaultSprintsBack = 0
	DefaultPrecision   = 1
	DefaultCacheTTL    = 8 * time.Hour
)

// DefaultAnchor is the fallback sprint numbering anchor used when the
// roster file does not supply its own.
var (
	DefaultAnchorDate   = time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	DefaultAnchorNumber = 100
)

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	RosterPath string
	TeamName   string

	Sprints     int
	SprintsBack int
	Today       time.Time // Reference date for sprint resolution (default: wall clock)

	AnchorDate   time.Time // Sprint numbering anchor start date (always a Monday)
	AnchorNumber int       // Sprint number assigned to the anchor sprint

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Year    int             // Target year for the rota export (0 = current year)
	Regions []schema.Region // Regions for bank holiday resolution

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	CacheTTL       time.Duration

	HRBaseURL      string
	HRToken        string // Please use env var as this is plaintext
	OnCallBaseURL  string
	OnCallToken    string // Please use env var as this is plaintext
	TrackerBaseURL string
	TrackerToken   string // Please use env var as this is plaintext
	ChatBaseURL    string
	ChatToken      string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TeamNameStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Roster         string `mapstructure:"roster"`
	Sprints        int    `mapstructure:"sprints"`
	SprintsBack    int    `mapstructure:"sprints-back"`
	Today          string `mapstructure:"today"`
	AnchorDate     string `mapstructure:"anchor-date"`
	AnchorNumber   int    `mapstructure:"anchor-number"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	CacheTTL       string `mapstructure:"cache-ttl"`

	// --- Fields from rotaCmd / bankholsCmd flags ---
	Year    int    `mapstructure:"year"`
	Regions string `mapstructure:"regions"`

	// --- Source endpoints and credentials (env or config file) ---
	HRURL        string `mapstructure:"hr-url"`
	HRToken      string `mapstructure:"hr-api-token"`
	OnCallURL    string `mapstructure:"oncall-url"`
	OnCallToken  string `mapstructure:"oncall-api-token"`
	TrackerURL   string `mapstructure:"tracker-url"`
	TrackerToken string `mapstructure:"tracker-api-token"`
	ChatURL      string `mapstructure:"chat-url"`
	ChatToken    string `mapstructure:"chat-api-token"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Regions != nil {
		clone.Regions = make([]schema.Region, len(c.Regions))
		copy(clone.Regions, c.Regions)
	}
	return &clone
}

// ReferenceDate returns the date used to resolve the current sprint,
// normalized to a UTC day.
func (c *Config) ReferenceDate() time.Time {
	if c.Today.IsZero() {
		return schema.Day(time.Now().UTC())
	}
	return c.Today
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSprintRange(cfg, input); err != nil {
		return err
	}
	if err := processCalendarAnchor(cfg, input); err != nil {
		return err
	}
	if err := processRegions(cfg, input); err != nil {
		return err
	}
	processEndpoints(cfg, input)
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the cache backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		ttl, err := time.ParseDuration(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl '%s': %w", input.CacheTTL, err)
		}
		if ttl < 0 {
			return fmt.Errorf("cache-ttl cannot be negative (received %s)", ttl)
		}
		cfg.CacheTTL = ttl
	}

	return nil
}

// validateSimpleInputs processes and validates all non-calendar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.TeamName = strings.TrimSpace(input.TeamNameStr)
	cfg.RosterPath = input.Roster
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Year = input.Year

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be 0, 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 2. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	return nil
}

// processSprintRange validates the sprint counts and the reference date.
func processSprintRange(cfg *Config, input *ConfigRawInput) error {
	if input.Sprints <= 0 || input.Sprints > MaxSprints {
		return fmt.Errorf("sprints must be greater than 0 and cannot exceed %d (received %d)", MaxSprints, input.Sprints)
	}
	cfg.Sprints = input.Sprints

	if input.SprintsBack < 0 {
		return fmt.Errorf("sprints-back cannot be negative (received %d)", input.SprintsBack)
	}
	cfg.SprintsBack = input.SprintsBack

	if input.Today != "" {
		today, err := schema.ParseDate(input.Today)
		if err != nil {
			return fmt.Errorf("invalid --today value '%s'. Expected %s: %w", input.Today, schema.DateFormat, err)
		}
		cfg.Today = today
	}

	return nil
}

// processCalendarAnchor resolves the sprint numbering anchor. The anchor date
// must be a Monday so that every derived sprint window stays Monday-aligned.
func processCalendarAnchor(cfg *Config, input *ConfigRawInput) error {
	cfg.AnchorDate = DefaultAnchorDate
	cfg.AnchorNumber = DefaultAnchorNumber

	if input.AnchorDate != "" {
		anchor, err := schema.ParseDate(input.AnchorDate)
		if err != nil {
			return fmt.Errorf("invalid anchor-date '%s'. Expected %s: %w", input.AnchorDate, schema.DateFormat, err)
		}
		cfg.AnchorDate = anchor
	}
	if cfg.AnchorDate.Weekday() != time.Monday {
		return fmt.Errorf("anchor-date %s is not a Monday", schema.FormatDate(cfg.AnchorDate))
	}

	if input.AnchorNumber != 0 {
		if input.AnchorNumber < 0 {
			return fmt.Errorf("anchor-number cannot be negative (received %d)", input.AnchorNumber)
		}
		cfg.AnchorNumber = input.AnchorNumber
	}

	return nil
}

// processRegions parses the comma-separated region list for bank holiday
// resolution. An empty list means all supported regions.
func processRegions(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.Regions) == "" {
		cfg.Regions = schema.AllRegions
		return nil
	}

	var regions []schema.Region
	for part := range strings.SplitSeq(input.Regions, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		region := schema.Region(strings.ToUpper(part))
		valid := false
		for _, r := range schema.AllRegions {
			if region == r {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid region '%s'. must be one of ENG, SCT, WLS, NIR, IE", part)
		}
		regions = append(regions, region)
	}
	cfg.Regions = regions
	return nil
}

// processEndpoints transfers source endpoint settings. Credentials are not
// validated here; a missing token only matters once a command reaches the
// source that needs it.
func processEndpoints(cfg *Config, input *ConfigRawInput) {
	cfg.HRBaseURL = strings.TrimRight(input.HRURL, "/")
	cfg.HRToken = input.HRToken
	cfg.OnCallBaseURL = strings.TrimRight(input.OnCallURL, "/")
	cfg.OnCallToken = input.OnCallToken
	cfg.TrackerBaseURL = strings.TrimRight(input.TrackerURL, "/")
	cfg.TrackerToken = input.TrackerToken
	cfg.ChatBaseURL = strings.TrimRight(input.ChatURL, "/")
	cfg.ChatToken = input.ChatToken
}
