package mcp_test

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	mcp_internal "github.com/brdge/sprintplan/internal/mcp"
	"github.com/brdge/sprintplan/internal/roster"
	"github.com/brdge/sprintplan/schema"
)

type stubAbsenceSource struct{}

func (stubAbsenceSource) Directory(_ context.Context) ([]schema.DirectoryEntry, error) {
	return []schema.DirectoryEntry{{ID: "e1", Name: "Ada Lovelace", Division: "Tech"}}, nil
}

func (stubAbsenceSource) Absences(_ context.Context, _ []string, _, _ time.Time) (map[string][]schema.AbsenceInterval, error) {
	return map[string][]schema.AbsenceInterval{}, nil
}

type stubOnCallSource struct{}

func (stubOnCallSource) Shifts(_ context.Context, _ string, _, _ time.Time) (map[string][]time.Time, error) {
	return map[string][]time.Time{}, nil
}

type stubEpicSource struct{}

func (stubEpicSource) ScheduledEpics(_ context.Context, _ string, _ time.Time) (float64, error) {
	return 1, nil
}

func testServerDeps(t *testing.T) (*contract.Config, *roster.Roster, core.Sources) {
	t.Helper()
	today, err := schema.ParseDate("2024-01-10")
	require.NoError(t, err)
	anchor, err := schema.ParseDate("2024-01-08")
	require.NoError(t, err)

	cfg := &contract.Config{
		Sprints:      2,
		Today:        today,
		AnchorDate:   anchor,
		AnchorNumber: 100,
	}
	teams := &roster.Roster{
		Teams: []schema.Team{
			{
				Name:          "Bridge",
				TrackerKey:    "BRD",
				PointsPerEpic: 10,
				PointCapacity: 1.5,
				LoadFactor:    0.8,
				Members: []schema.Member{
					{Name: "Ada", HRName: "Ada Lovelace", OnCallName: "alovelace", StartPct: 1.0},
				},
			},
		},
	}
	src := core.Sources{HR: stubAbsenceSource{}, OnCall: stubOnCallSource{}, Tracker: stubEpicSource{}}
	return cfg, teams, src
}

func TestMCPServerGetCapacity(t *testing.T) {
	cfg, teams, src := testServerDeps(t)
	s := mcp_internal.NewMCPServer(cfg, teams, src)

	tool := s.GetTool("get_capacity")
	require.NotNil(t, tool, "Tool get_capacity should exist")

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "get_capacity",
			Arguments: map[string]any{
				"team": "bridge",
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"sprint": 100`)
	assert.Contains(t, text, `"sprint": 101`)
	assert.Contains(t, text, `"team_days": 10`)
	assert.Contains(t, text, `"scheduled_points": 10`)
}

func TestMCPServerUnknownTeam(t *testing.T) {
	cfg, teams, src := testServerDeps(t)
	s := mcp_internal.NewMCPServer(cfg, teams, src)

	for _, name := range []string{"get_capacity", "get_absences", "get_oncall"} {
		t.Run(name, func(t *testing.T) {
			tool := s.GetTool(name)
			require.NotNil(t, tool)

			req := mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name: name,
					Arguments: map[string]any{
						"team": "Nonsuch",
					},
				},
			}

			res, err := tool.Handler(context.Background(), req)
			require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "unknown team 'Nonsuch'")
		})
	}
}

func TestMCPServerGetAbsences(t *testing.T) {
	cfg, teams, src := testServerDeps(t)
	s := mcp_internal.NewMCPServer(cfg, teams, src)

	tool := s.GetTool("get_absences")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "get_absences",
			Arguments: map[string]any{
				"team":    "Bridge",
				"sprints": 1.0,
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"start": "2024-01-08"`)
	assert.NotContains(t, text, `"sprint": 101`)
}
