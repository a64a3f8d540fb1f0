package mcp

import (
	"context"
	"sync"

	"github.com/claude/liftweek/internal/models"
	"github.com/claude/liftweek/internal/plan"
	"github.com/claude/liftweek/internal/planstore"
)

// DataSource abstracts the plan for MCP tools. Both Local (gateway-backed)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	GetPlan(ctx context.Context) (models.WeekPlan, error)
	GetDay(ctx context.Context, day models.Weekday) (models.DayPlan, error)
	AddExercise(ctx context.Context, day models.Weekday, in plan.ExerciseInput) (models.DayPlan, error)
	UpdateExercise(ctx context.Context, day models.Weekday, id string, upd plan.ExerciseUpdate) (models.DayPlan, error)
	RemoveExercise(ctx context.Context, day models.Weekday, id string) (models.DayPlan, error)
	Reorder(ctx context.Context, day models.Weekday, from, to int) (models.DayPlan, error)
	SetDayFocus(ctx context.Context, day models.Weekday, groups []string) (models.DayPlan, error)
	ResetDay(ctx context.Context, day models.Weekday) (models.DayPlan, error)
	ResetWeek(ctx context.Context) (models.WeekPlan, error)
	GetStats(ctx context.Context) (plan.CompletionStats, error)
	GetCatalog(ctx context.Context) (models.Catalog, error)
}

// Local serves MCP tools straight from the persistence gateway.
type Local struct {
	gateway *planstore.Gateway
	catalog models.Catalog

	// mu serializes read-modify-write cycles, mirroring the REST server's
	// mutation lock.
	mu sync.Mutex
}

// Compile-time check: *Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

// NewLocal creates a gateway-backed data source.
func NewLocal(gateway *planstore.Gateway, catalog models.Catalog) *Local {
	return &Local{gateway: gateway, catalog: catalog}
}

func (l *Local) GetPlan(ctx context.Context) (models.WeekPlan, error) {
	return l.gateway.Load(ctx), nil
}

func (l *Local) GetDay(ctx context.Context, day models.Weekday) (models.DayPlan, error) {
	if !models.ValidWeekday(day) {
		return models.DayPlan{}, plan.ErrUnknownDay
	}
	return l.gateway.Load(ctx)[day], nil
}

// mutate runs op against the current plan under the lock and persists the
// result, returning the updated day.
func (l *Local) mutate(ctx context.Context, day models.Weekday, op func(models.WeekPlan) (models.WeekPlan, error)) (models.DayPlan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	updated, err := op(l.gateway.Load(ctx))
	if err != nil {
		return models.DayPlan{}, err
	}
	l.gateway.Save(ctx, updated)
	return updated[day], nil
}

func (l *Local) AddExercise(ctx context.Context, day models.Weekday, in plan.ExerciseInput) (models.DayPlan, error) {
	return l.mutate(ctx, day, func(p models.WeekPlan) (models.WeekPlan, error) {
		return plan.AddExercise(p, day, in)
	})
}

func (l *Local) UpdateExercise(ctx context.Context, day models.Weekday, id string, upd plan.ExerciseUpdate) (models.DayPlan, error) {
	return l.mutate(ctx, day, func(p models.WeekPlan) (models.WeekPlan, error) {
		return plan.UpdateExercise(p, day, id, upd)
	})
}

func (l *Local) RemoveExercise(ctx context.Context, day models.Weekday, id string) (models.DayPlan, error) {
	return l.mutate(ctx, day, func(p models.WeekPlan) (models.WeekPlan, error) {
		return plan.RemoveExercise(p, day, id)
	})
}

func (l *Local) Reorder(ctx context.Context, day models.Weekday, from, to int) (models.DayPlan, error) {
	return l.mutate(ctx, day, func(p models.WeekPlan) (models.WeekPlan, error) {
		return plan.Reorder(p, day, from, to)
	})
}

func (l *Local) SetDayFocus(ctx context.Context, day models.Weekday, groups []string) (models.DayPlan, error) {
	return l.mutate(ctx, day, func(p models.WeekPlan) (models.WeekPlan, error) {
		return plan.RenameDayFocus(p, day, groups)
	})
}

func (l *Local) ResetDay(ctx context.Context, day models.Weekday) (models.DayPlan, error) {
	return l.mutate(ctx, day, func(p models.WeekPlan) (models.WeekPlan, error) {
		return plan.ResetDay(p, day)
	})
}

func (l *Local) ResetWeek(ctx context.Context) (models.WeekPlan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	updated := plan.ResetWeek(l.gateway.Load(ctx))
	l.gateway.Save(ctx, updated)
	return updated, nil
}

func (l *Local) GetStats(ctx context.Context) (plan.CompletionStats, error) {
	return plan.Stats(l.gateway.Load(ctx)), nil
}

func (l *Local) GetCatalog(context.Context) (models.Catalog, error) {
	return l.catalog, nil
}
