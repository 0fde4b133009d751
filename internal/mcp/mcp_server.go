// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/internal/roster"
)

// NewMCPServer initializes and configures the Sprintplan MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, teams *roster.Roster, src core.Sources) *server.MCPServer {
	s := server.NewMCPServer(
		"Sprintplan Capacity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		teams:   teams,
		src:     src,
	}

	// --- 1. Tool: get_capacity ---
	s.AddTool(mcp.NewTool("get_capacity",
		mcp.WithDescription("Compute per-sprint team capacity from absences, on-call duty and scheduled epics."),
		mcp.WithString("team", mcp.Description("Team name from the roster."), mcp.Required()),
		mcp.WithNumber("sprints", mcp.Description("Number of sprints to report on. Defaults to the configured value.")),
		mcp.WithNumber("sprints_back", mcp.Description("Shift the sprint range this many sprints into the past.")),
	), h.handleGetCapacity)

	// --- 2. Tool: get_absences ---
	s.AddTool(mcp.NewTool("get_absences",
		mcp.WithDescription("List per-sprint absences for a team's members and people of interest."),
		mcp.WithString("team", mcp.Description("Team name from the roster."), mcp.Required()),
		mcp.WithNumber("sprints", mcp.Description("Number of sprints to report on.")),
		mcp.WithNumber("sprints_back", mcp.Description("Shift the sprint range this many sprints into the past.")),
	), h.handleGetAbsences)

	// --- 3. Tool: get_oncall ---
	s.AddTool(mcp.NewTool("get_oncall",
		mcp.WithDescription("List per-sprint L1/L2 on-call duty for a team, with absence conflicts flagged."),
		mcp.WithString("team", mcp.Description("Team name from the roster."), mcp.Required()),
		mcp.WithNumber("sprints", mcp.Description("Number of sprints to report on.")),
	), h.handleGetOnCall)

	return s
}

// StartMCPServer starts the Sprintplan MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, teams *roster.Roster, src core.Sources) error {
	s := NewMCPServer(baseCfg, teams, src)
	return server.ServeStdio(s)
}
