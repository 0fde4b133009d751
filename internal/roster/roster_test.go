package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRoster = `
teams:
  - name: Bridge
    tracker_key: BRG
    points_per_epic: 10
    manager: Mgr Smith
    point_capacity: 1.5
    load_factor: 0.8
    engineering_split: 0.75
    l1_rotation: rot-l1
    l2_rotation: rot-l2
    socials: ["2024-01-18"]
    people_of_interest: ["Pat Iona"]
    members:
      - name: Ada
        hr_name: Ada Lovelace
        oncall_name: alovelace
      - name: Bea
        start_date: 2024-01-15
        start_pct: 0.5
  - name: Harbor
    members:
      - name: Cal
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	roster, err := Load(writeRoster(t, validRoster))
	require.NoError(t, err)
	require.Len(t, roster.Teams, 2)

	bridge := roster.Teams[0]
	assert.Equal(t, "Bridge", bridge.Name)
	assert.Equal(t, "BRG", bridge.TrackerKey)
	assert.InDelta(t, 1.5, bridge.PointCapacity, 1e-9)
	assert.Equal(t, []string{"Pat Iona"}, bridge.PeopleOfInterest)
	require.Len(t, bridge.Socials, 1)

	require.Len(t, bridge.Members, 2)
	ada := bridge.Members[0]
	assert.Equal(t, "Ada Lovelace", ada.HRName)
	assert.Equal(t, "alovelace", ada.OnCallName)
	assert.False(t, ada.HasStartDate())
	assert.InDelta(t, 1.0, ada.StartPct, 1e-9)

	bea := bridge.Members[1]
	assert.True(t, bea.HasStartDate())
	assert.InDelta(t, 0.5, bea.StartPct, 1e-9)

	// Defaults kick in when coefficients and aliases are omitted.
	harbor := roster.Teams[1]
	assert.InDelta(t, DefaultPointCapacity, harbor.PointCapacity, 1e-9)
	assert.InDelta(t, DefaultLoadFactor, harbor.LoadFactor, 1e-9)
	assert.Equal(t, "Cal", harbor.Members[0].HRName)
	assert.Equal(t, "Cal", harbor.Members[0].OnCallName)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "missing file content",
			content: "teams: []",
			errPart: "defines no teams",
		},
		{
			name: "unparseable start date is fatal",
			content: `
teams:
  - name: Bridge
    members:
      - name: Ada
        start_date: not-a-date
`,
			errPart: "start_date",
		},
		{
			name: "leave date must be after start date",
			content: `
teams:
  - name: Bridge
    members:
      - name: Ada
        start_date: 2024-02-01
        leave_date: 2024-01-15
`,
			errPart: "must be after start_date",
		},
		{
			name: "start pct outside range",
			content: `
teams:
  - name: Bridge
    members:
      - name: Ada
        start_pct: 1.5
`,
			errPart: "start_pct",
		},
		{
			name: "duplicate member",
			content: `
teams:
  - name: Bridge
    members:
      - name: Ada
      - name: Ada
`,
			errPart: "duplicate member",
		},
		{
			name: "duplicate team name case-insensitive",
			content: `
teams:
  - name: Bridge
    members:
      - name: Ada
  - name: bridge
    members:
      - name: Bea
`,
			errPart: "duplicate team",
		},
		{
			name: "load factor out of range",
			content: `
teams:
  - name: Bridge
    load_factor: 1.2
    members:
      - name: Ada
`,
			errPart: "load_factor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeRoster(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestTeamByName(t *testing.T) {
	roster, err := Load(writeRoster(t, validRoster))
	require.NoError(t, err)

	team, err := roster.TeamByName("bridge")
	require.NoError(t, err)
	assert.Equal(t, "Bridge", team.Name)

	_, err = roster.TeamByName("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bridge, Harbor")
}
