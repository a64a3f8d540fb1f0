package mcp

import (
	"context"

	"github.com/claude/liftweek/internal/models"
	"github.com/claude/liftweek/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var dayEnum = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Get the full 7-day workout plan: each day's muscle-group focus and ordered exercise list."),
)

var toolGetDay = mcp.NewTool("get_day",
	mcp.WithDescription("Get one day's plan: its focus name and exercises in order."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name"), mcp.Enum(dayEnum...)),
)

var toolAddExercise = mcp.NewTool("add_exercise",
	mcp.WithDescription("Add an exercise to the end of a day's list. New exercises start incomplete with no weight or completed amount recorded."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name"), mcp.Enum(dayEnum...)),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise display name")),
	mcp.WithNumber("catalog_id", mcp.Description("Catalog ID when picking from the built-in exercise list; omit for a custom exercise")),
	mcp.WithString("sets", mcp.Description("Target sets (or minutes for cardio), e.g. '3'")),
	mcp.WithString("reps", mcp.Description("Target rep range, e.g. '8-12'; empty for cardio")),
)

var toolUpdateExercise = mcp.NewTool("update_exercise",
	mcp.WithDescription("Update fields of an exercise by id. Only supplied fields change. Updating a missing id is a no-op."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name"), mcp.Enum(dayEnum...)),
	mcp.WithString("id", mcp.Required(), mcp.Description("Exercise id within the day")),
	mcp.WithString("name", mcp.Description("New display name")),
	mcp.WithString("sets", mcp.Description("New target sets")),
	mcp.WithString("reps", mcp.Description("New target reps")),
	mcp.WithString("weight", mcp.Description("Weight used, free text")),
	mcp.WithString("effective_sets", mcp.Description("Completed sets (or minutes for cardio)")),
	mcp.WithString("status", mcp.Description("Completion status"), mcp.Enum("incomplete", "completed", "skipped")),
)

var toolRemoveExercise = mcp.NewTool("remove_exercise",
	mcp.WithDescription("Remove an exercise from a day by id. Removing a missing id is a no-op."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name"), mcp.Enum(dayEnum...)),
	mcp.WithString("id", mcp.Required(), mcp.Description("Exercise id within the day")),
)

var toolReorderExercise = mcp.NewTool("reorder_exercise",
	mcp.WithDescription("Move the exercise at position 'from' to position 'to' within a day (zero-based). Other exercises keep their relative order."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name"), mcp.Enum(dayEnum...)),
	mcp.WithNumber("from", mcp.Required(), mcp.Description("Current zero-based position")),
	mcp.WithNumber("to", mcp.Required(), mcp.Description("Target zero-based position")),
)

var toolSetDayFocus = mcp.NewTool("set_day_focus",
	mcp.WithDescription("Set a day's muscle-group focus. Up to 3 distinct groups join with ' & '; an empty list or any 'Rest' entry makes the day a rest day."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name"), mcp.Enum(dayEnum...)),
	mcp.WithArray("muscle_groups", mcp.Required(), mcp.Description("Desired muscle-group labels"), mcp.Items(map[string]any{"type": "string"})),
)

var toolResetDay = mcp.NewTool("reset_day",
	mcp.WithDescription("Reset one day to the built-in starter plan. Destructive: the day's focus and exercises are discarded with no undo."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name"), mcp.Enum(dayEnum...)),
)

var toolResetWeek = mcp.NewTool("reset_week",
	mcp.WithDescription("Reset the entire week to the built-in starter plan. Destructive: nothing from the current plan survives."),
)

var toolGetStats = mcp.NewTool("get_stats",
	mcp.WithDescription("Get completion statistics over the whole week: totals by status and the completion percentage."),
)

var toolListCatalog = mcp.NewTool("list_catalog",
	mcp.WithDescription("List the static exercise catalog, optionally filtered by muscle group."),
	mcp.WithString("muscle_group", mcp.Description("Filter to one muscle group (e.g. 'Chest', 'Cardio')")),
)

// --- Tool handlers ---

// requireDay extracts and validates the day argument.
func requireDay(req mcp.CallToolRequest) (models.Weekday, *mcp.CallToolResult) {
	raw, err := req.RequireString("day")
	if err != nil {
		return "", mcp.NewToolResultError("day parameter is required")
	}
	day := models.Weekday(raw)
	if !models.ValidWeekday(day) {
		return "", mcp.NewToolResultError("unknown day: " + raw)
	}
	return day, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := h.ds.GetPlan(ctx)
	if err != nil {
		h.log.Error("mcp get_plan", "error", err)
		return mcp.NewToolResultError("plan fetch failed: " + err.Error()), nil
	}
	return jsonResult(p)
}

func (h *handlers) getDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, errRes := requireDay(req)
	if errRes != nil {
		return errRes, nil
	}
	dp, err := h.ds.GetDay(ctx, day)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dp)
}

func (h *handlers) addExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, errRes := requireDay(req)
	if errRes != nil {
		return errRes, nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	input := plan.ExerciseInput{
		Name: name,
		Sets: req.GetString("sets", ""),
		Reps: req.GetString("reps", ""),
	}
	if id := req.GetInt("catalog_id", 0); id != 0 {
		input.CatalogID = &id
	}

	dp, err := h.ds.AddExercise(ctx, day, input)
	if err != nil {
		h.log.Error("mcp add_exercise", "day", day, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dp)
}

func (h *handlers) updateExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, errRes := requireDay(req)
	if errRes != nil {
		return errRes, nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	var upd plan.ExerciseUpdate
	args := req.GetArguments()
	if v, ok := args["name"].(string); ok {
		upd.Name = &v
	}
	if v, ok := args["sets"].(string); ok {
		upd.Sets = &v
	}
	if v, ok := args["reps"].(string); ok {
		upd.Reps = &v
	}
	if v, ok := args["weight"].(string); ok {
		upd.Weight = &v
	}
	if v, ok := args["effective_sets"].(string); ok {
		upd.EffectiveSets = &v
	}
	if v, ok := args["status"].(string); ok {
		status := models.Status(v)
		if !status.Valid() {
			return mcp.NewToolResultError("invalid status: " + v), nil
		}
		upd.Status = &status
	}

	dp, err := h.ds.UpdateExercise(ctx, day, id, upd)
	if err != nil {
		h.log.Error("mcp update_exercise", "day", day, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dp)
}

func (h *handlers) removeExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, errRes := requireDay(req)
	if errRes != nil {
		return errRes, nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	dp, err := h.ds.RemoveExercise(ctx, day, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dp)
}

func (h *handlers) reorderExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, errRes := requireDay(req)
	if errRes != nil {
		return errRes, nil
	}
	from, err := req.RequireInt("from")
	if err != nil {
		return mcp.NewToolResultError("from parameter is required"), nil
	}
	to, err := req.RequireInt("to")
	if err != nil {
		return mcp.NewToolResultError("to parameter is required"), nil
	}

	dp, err := h.ds.Reorder(ctx, day, from, to)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dp)
}

func (h *handlers) setDayFocus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, errRes := requireDay(req)
	if errRes != nil {
		return errRes, nil
	}
	groups := req.GetStringSlice("muscle_groups", nil)
	if groups == nil {
		return mcp.NewToolResultError("muscle_groups parameter is required"), nil
	}

	dp, err := h.ds.SetDayFocus(ctx, day, groups)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dp)
}

func (h *handlers) resetDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, errRes := requireDay(req)
	if errRes != nil {
		return errRes, nil
	}
	dp, err := h.ds.ResetDay(ctx, day)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dp)
}

func (h *handlers) resetWeek(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := h.ds.ResetWeek(ctx)
	if err != nil {
		h.log.Error("mcp reset_week", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(p)
}

func (h *handlers) getStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.ds.GetStats(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(stats)
}

func (h *handlers) listCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog, err := h.ds.GetCatalog(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if group := req.GetString("muscle_group", ""); group != "" {
		return jsonResult(catalog.ByMuscleGroup(group))
	}
	return jsonResult(catalog)
}
