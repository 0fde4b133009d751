package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/roster"
	"github.com/brdge/sprintplan/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	teams   *roster.Roster
	src     core.Sources
}

// buildReport resolves the requested team and runs the orchestrator with the
// request's sprint-range overrides applied.
func (h *toolHandler) buildReport(ctx context.Context, request mcp.CallToolRequest) (*schema.TeamReport, error) {
	cfg := h.baseCfg.Clone()
	if s := request.GetInt("sprints", 0); s > 0 {
		cfg.Sprints = s
	}
	if b := request.GetInt("sprints_back", 0); b > 0 {
		cfg.SprintsBack = b
	}

	team, err := h.teams.TeamByName(request.GetString("team", ""))
	if err != nil {
		return nil, err
	}
	return core.BuildTeamReport(ctx, team, h.src, core.NewPlanConfig(cfg))
}

func (h *toolHandler) handleGetCapacity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.buildReport(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("capacity report failed: %v", err)), nil
	}

	type sprintCapacity struct {
		Sprint       int     `json:"sprint"`
		Start        string  `json:"start"`
		End          string  `json:"end"`
		TeamDays     int     `json:"team_days"`
		Holidays     int     `json:"holidays"`
		Points       float64 `json:"points"`
		EngPoints    float64 `json:"eng_points"`
		ProdPoints   float64 `json:"prod_points"`
		Scheduled    float64 `json:"scheduled_points"`
		DiffPct      float64 `json:"diff_pct"`
		OverCapacity bool    `json:"over_capacity"`
		Label        string  `json:"label"`
	}
	out := make([]sprintCapacity, 0, len(report.Sprints))
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		c := &sprint.Capacity
		out = append(out, sprintCapacity{
			Sprint:       sprint.Window.Number,
			Start:        schema.FormatDate(sprint.Window.Start),
			End:          schema.FormatDate(sprint.Window.End),
			TeamDays:     c.TotalTeamDays,
			Holidays:     c.TotalHolidays,
			Points:       c.Points,
			EngPoints:    c.EngPoints,
			ProdPoints:   c.ProdPoints,
			Scheduled:    c.ScheduledPoints(report.Team),
			DiffPct:      c.DiffPct(report.Team),
			OverCapacity: c.OverCapacity(report.Team),
			Label:        contract.GetPlainLabel(c.DiffPct(report.Team), c.ScheduledPoints(report.Team)),
		})
	}

	jsonData, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAbsences(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.buildReport(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("absence report failed: %v", err)), nil
	}

	type sprintAbsences struct {
		Sprint      int                 `json:"sprint"`
		Start       string              `json:"start"`
		End         string              `json:"end"`
		Absences    map[string][]string `json:"absences"`
		POIAbsences map[string][]string `json:"poi_absences,omitempty"`
		Social      string              `json:"social,omitempty"`
	}
	out := make([]sprintAbsences, 0, len(report.Sprints))
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		entry := sprintAbsences{
			Sprint:      sprint.Window.Number,
			Start:       schema.FormatDate(sprint.Window.Start),
			End:         schema.FormatDate(sprint.Window.End),
			Absences:    intervalStrings(sprint.Absences),
			POIAbsences: intervalStrings(sprint.POIAbsences),
		}
		if sprint.HasSocial() {
			entry.Social = schema.FormatDate(sprint.SocialDate)
		}
		out = append(out, entry)
	}

	jsonData, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetOnCall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.buildReport(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("on-call report failed: %v", err)), nil
	}

	type conflictEntry struct {
		Name string `json:"name"`
		Date string `json:"date"`
		Tier string `json:"tier"`
	}
	type sprintOnCall struct {
		Sprint    int                 `json:"sprint"`
		Start     string              `json:"start"`
		End       string              `json:"end"`
		L1        map[string][]string `json:"l1"`
		L2        map[string][]string `json:"l2"`
		Conflicts []conflictEntry     `json:"conflicts,omitempty"`
	}
	out := make([]sprintOnCall, 0, len(report.Sprints))
	for i := range report.Sprints {
		sprint := &report.Sprints[i]
		entry := sprintOnCall{
			Sprint: sprint.Window.Number,
			Start:  schema.FormatDate(sprint.Window.Start),
			End:    schema.FormatDate(sprint.Window.End),
			L1:     dateStrings(sprint.L1),
			L2:     dateStrings(sprint.L2),
		}
		for _, c := range core.Conflicts(sprint) {
			entry.Conflicts = append(entry.Conflicts, conflictEntry{
				Name: c.Name,
				Date: schema.FormatDate(c.Date),
				Tier: string(c.Tier),
			})
		}
		out = append(out, entry)
	}

	jsonData, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func intervalStrings(m map[string][]schema.AbsenceInterval) map[string][]string {
	out := make(map[string][]string, len(m))
	for name, intervals := range m {
		strs := make([]string, 0, len(intervals))
		for _, interval := range intervals {
			strs = append(strs, interval.String())
		}
		out[name] = strs
	}
	return out
}

func dateStrings(m map[string][]time.Time) map[string][]string {
	out := make(map[string][]string, len(m))
	for name, dates := range m {
		strs := make([]string, 0, len(dates))
		for _, d := range dates {
			strs = append(strs, schema.FormatDate(d))
		}
		out[name] = strs
	}
	return out
}
