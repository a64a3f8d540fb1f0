// Package mcp exposes the workout plan to language-model clients over the
// Model Context Protocol: tools for every plan mutation, read tools for
// stats and the catalog, and resources for the plan itself.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftWeek", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftWeek weekly workout plan. Read the plan, add/update/remove/reorder exercises, change a day's muscle-group focus, reset days, and check completion stats. Day names are Monday through Sunday. Resets are destructive and have no undo."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolGetDay, Handler: h.getDay},
		server.ServerTool{Tool: toolAddExercise, Handler: h.addExercise},
		server.ServerTool{Tool: toolUpdateExercise, Handler: h.updateExercise},
		server.ServerTool{Tool: toolRemoveExercise, Handler: h.removeExercise},
		server.ServerTool{Tool: toolReorderExercise, Handler: h.reorderExercise},
		server.ServerTool{Tool: toolSetDayFocus, Handler: h.setDayFocus},
		server.ServerTool{Tool: toolResetDay, Handler: h.resetDay},
		server.ServerTool{Tool: toolResetWeek, Handler: h.resetWeek},
		server.ServerTool{Tool: toolGetStats, Handler: h.getStats},
		server.ServerTool{Tool: toolListCatalog, Handler: h.listCatalog},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resPlan, Handler: h.planResource},
		server.ServerResource{Resource: resToday, Handler: h.todayResource},
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resPlan = mcp.NewResource(
	"liftweek://plan",
	"Week Plan",
	mcp.WithResourceDescription("The full 7-day workout plan: each day's muscle-group focus and ordered exercise list"),
	mcp.WithMIMEType("application/json"),
)

var resToday = mcp.NewResource(
	"liftweek://today",
	"Today's Plan",
	mcp.WithResourceDescription("The current weekday's focus, exercises, and completion stats"),
	mcp.WithMIMEType("application/json"),
)

var resCatalog = mcp.NewResource(
	"liftweek://catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("The static exercise reference list, grouped by muscle group"),
	mcp.WithMIMEType("application/json"),
)
