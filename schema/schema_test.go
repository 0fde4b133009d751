package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberDates(t *testing.T) {
	m := Member{Name: "Ada"}
	assert.False(t, m.HasStartDate())
	assert.False(t, m.HasLeaveDate())

	m.StartDate = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	m.LeaveDate = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, m.HasStartDate())
	assert.True(t, m.HasLeaveDate())
}

func TestTeamMemberByName(t *testing.T) {
	team := &Team{
		Name: "Bridge",
		Members: []Member{
			{Name: "Ada", OnCallName: "alovelace"},
			{Name: "Bea", OnCallName: "bsmith"},
		},
	}

	m := team.MemberByName("Bea")
	require.NotNil(t, m)
	assert.Equal(t, "bsmith", m.OnCallName)

	// Returned pointer aliases the roster entry.
	m.StartPct = 0.5
	assert.Equal(t, 0.5, team.Members[1].StartPct)

	assert.Nil(t, team.MemberByName("Cal"))
}

func TestTeamOnCallNames(t *testing.T) {
	team := &Team{
		Members: []Member{
			{Name: "Ada", OnCallName: "alovelace"},
			{Name: "Bea", OnCallName: "bsmith"},
		},
	}
	assert.Equal(t, []string{"alovelace", "bsmith"}, team.OnCallNames())
	assert.Empty(t, (&Team{}).OnCallNames())
}

func TestSprintCapacityScheduledPoints(t *testing.T) {
	team := &Team{PointsPerEpic: 10}
	c := &SprintCapacity{ScheduledEpics: 2.5}
	assert.Equal(t, 25.0, c.ScheduledPoints(team))
}

func TestSprintCapacityOverCapacity(t *testing.T) {
	team := &Team{PointsPerEpic: 10}

	tests := []struct {
		name   string
		points float64
		epics  float64
		want   bool
	}{
		{"under", 30, 2, false},
		{"exactly at", 20, 2, false},
		{"over", 15, 2, true},
		{"nothing scheduled", 15, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &SprintCapacity{Points: tt.points, ScheduledEpics: tt.epics}
			assert.Equal(t, tt.want, c.OverCapacity(team))
		})
	}
}

func TestSprintCapacityDiffPct(t *testing.T) {
	team := &Team{PointsPerEpic: 10}

	tests := []struct {
		name   string
		points float64
		epics  float64
		want   float64
	}{
		{"scheduled above capacity", 20, 3, 50},
		{"scheduled below capacity", 20, 1, -50},
		{"scheduled equals capacity", 20, 2, 0},
		{"zero capacity", 0, 2, 0},
		{"negative capacity guarded", -5, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &SprintCapacity{Points: tt.points, ScheduledEpics: tt.epics}
			assert.InDelta(t, tt.want, c.DiffPct(team), 1e-9)
		})
	}
}

func TestSprintReportHasSocial(t *testing.T) {
	r := &SprintReport{}
	assert.False(t, r.HasSocial())

	r.SocialDate = time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC)
	assert.True(t, r.HasSocial())
}
