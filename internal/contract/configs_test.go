package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brdge/sprintplan/schema"
)

// validInput returns a raw input that passes all validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		TeamNameStr:  "bridge",
		Roster:       "teams.yaml",
		Sprints:      3,
		Precision:    1,
		Output:       "text",
		Color:        "yes",
		CacheBackend: "sqlite",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, "bridge", cfg.TeamName)
	assert.Equal(t, "teams.yaml", cfg.RosterPath)
	assert.Equal(t, 3, cfg.Sprints)
	assert.Equal(t, 0, cfg.SprintsBack)
	assert.True(t, cfg.Today.IsZero())
	assert.Equal(t, DefaultAnchorDate, cfg.AnchorDate)
	assert.Equal(t, DefaultAnchorNumber, cfg.AnchorNumber)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, schema.AllRegions, cfg.Regions)
}

func TestProcessAndValidateOverrides(t *testing.T) {
	input := validInput()
	input.Today = "2024-01-10"
	input.AnchorDate = "2023-12-25"
	input.AnchorNumber = 42
	input.SprintsBack = 2
	input.CacheTTL = "30m"
	input.Regions = "sct, ie"
	input.HRURL = "https://hr.example.com/"
	input.TrackerURL = "https://tracker.example.com"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), cfg.Today)
	assert.Equal(t, time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC), cfg.AnchorDate)
	assert.Equal(t, 42, cfg.AnchorNumber)
	assert.Equal(t, 2, cfg.SprintsBack)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []schema.Region{schema.RegionScotland, schema.RegionIreland}, cfg.Regions)
	// Trailing slashes are stripped from endpoints.
	assert.Equal(t, "https://hr.example.com", cfg.HRBaseURL)
	assert.Equal(t, "https://tracker.example.com", cfg.TrackerBaseURL)
}

func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		wantErr string
	}{
		{
			name:    "zero sprints",
			mutate:  func(in *ConfigRawInput) { in.Sprints = 0 },
			wantErr: "sprints must be greater than 0",
		},
		{
			name:    "too many sprints",
			mutate:  func(in *ConfigRawInput) { in.Sprints = 14 },
			wantErr: "cannot exceed 13",
		},
		{
			name:    "negative sprints-back",
			mutate:  func(in *ConfigRawInput) { in.SprintsBack = -1 },
			wantErr: "sprints-back cannot be negative",
		},
		{
			name:    "bad today",
			mutate:  func(in *ConfigRawInput) { in.Today = "10/01/2024" },
			wantErr: "invalid --today value",
		},
		{
			name:    "anchor not a monday",
			mutate:  func(in *ConfigRawInput) { in.AnchorDate = "2024-01-09" },
			wantErr: "is not a Monday",
		},
		{
			name:    "negative anchor number",
			mutate:  func(in *ConfigRawInput) { in.AnchorNumber = -5 },
			wantErr: "anchor-number cannot be negative",
		},
		{
			name:    "precision out of range",
			mutate:  func(in *ConfigRawInput) { in.Precision = 3 },
			wantErr: "precision must be 0, 1 or 2",
		},
		{
			name:    "bad output mode",
			mutate:  func(in *ConfigRawInput) { in.Output = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:    "bad color",
			mutate:  func(in *ConfigRawInput) { in.Color = "maybe" },
			wantErr: "invalid --color value",
		},
		{
			name:    "bad cache backend",
			mutate:  func(in *ConfigRawInput) { in.CacheBackend = "redis" },
			wantErr: "invalid cache backend",
		},
		{
			name:    "mysql without connection string",
			mutate:  func(in *ConfigRawInput) { in.CacheBackend = "mysql" },
			wantErr: "cache-db-connect is required",
		},
		{
			name: "mysql malformed connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
				in.CacheDBConnect = "user:pass@host/db"
			},
			wantErr: "must contain '@tcp('",
		},
		{
			name: "postgresql missing dbname",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "postgresql"
				in.CacheDBConnect = "host=localhost user=app"
			},
			wantErr: "must contain 'dbname='",
		},
		{
			name:    "bad cache ttl",
			mutate:  func(in *ConfigRawInput) { in.CacheTTL = "soon" },
			wantErr: "invalid cache-ttl",
		},
		{
			name:    "negative cache ttl",
			mutate:  func(in *ConfigRawInput) { in.CacheTTL = "-1h" },
			wantErr: "cache-ttl cannot be negative",
		},
		{
			name:    "unknown region",
			mutate:  func(in *ConfigRawInput) { in.Regions = "ENG,ZZ" },
			wantErr: "invalid region 'ZZ'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		TeamName: "bridge",
		Sprints:  3,
		Regions:  []schema.Region{schema.RegionEngland},
	}
	clone := cfg.Clone()

	clone.TeamName = "harbor"
	clone.Regions[0] = schema.RegionIreland

	assert.Equal(t, "bridge", cfg.TeamName)
	assert.Equal(t, schema.RegionEngland, cfg.Regions[0])
}

func TestReferenceDate(t *testing.T) {
	t.Run("explicit today", func(t *testing.T) {
		today := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
		cfg := &Config{Today: today}
		assert.Equal(t, today, cfg.ReferenceDate())
	})

	t.Run("wall clock fallback is a normalized day", func(t *testing.T) {
		cfg := &Config{}
		ref := cfg.ReferenceDate()
		assert.Equal(t, schema.Day(ref), ref)
	})
}
