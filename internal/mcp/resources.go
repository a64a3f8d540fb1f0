package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/liftweek/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) planResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	p, err := h.ds.GetPlan(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, p)
}

func (h *handlers) todayResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	day := currentWeekday(time.Now())
	dp, err := h.ds.GetDay(ctx, day)
	if err != nil {
		return nil, err
	}

	stats, err := h.ds.GetStats(ctx)
	if err != nil {
		h.log.Warn("today resource: stats failed", "error", err)
	}

	return jsonContents(req.Params.URI, map[string]any{
		"day":   day,
		"plan":  dp,
		"stats": stats,
	})
}

func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog, err := h.ds.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.CatalogEntry)
	for _, group := range models.MuscleGroups {
		if entries := catalog.ByMuscleGroup(group); entries != nil {
			grouped[group] = entries
		}
	}
	return jsonContents(req.Params.URI, grouped)
}

// currentWeekday maps a time to the plan's day key.
func currentWeekday(t time.Time) models.Weekday {
	return models.Weekday(t.Weekday().String())
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
