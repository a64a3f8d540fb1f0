// Package planstore is the persistence gateway for the week plan: one store
// handle, one key, JSON round-trip, and a built-in default plan whenever
// loading fails. Storage trouble never reaches the caller — a plan is
// convenience data, so availability wins over durability here.
package planstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/claude/liftweek/internal/models"
	"github.com/claude/liftweek/internal/storage"
)

// DefaultPlanKey is the store key the plan blob lives under unless
// configured otherwise.
const DefaultPlanKey = "workoutPlan"

// Gateway loads and saves the week plan. The store and key are injected so
// tests can swap in a memory store, and a mutex serializes access to the
// one persisted key within this process.
type Gateway struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	log   *slog.Logger
}

// New creates a gateway over the given store and key. An empty key falls
// back to DefaultPlanKey.
func New(store storage.Store, key string, log *slog.Logger) *Gateway {
	if key == "" {
		key = DefaultPlanKey
	}
	return &Gateway{store: store, key: key, log: log}
}

// Load returns the persisted plan, or the built-in default when the key is
// absent, the blob does not decode, or the store errors. It never fails.
func (g *Gateway) Load(ctx context.Context) models.WeekPlan {
	g.mu.Lock()
	defer g.mu.Unlock()

	blob, found, err := g.store.Load(ctx, g.key)
	if err != nil {
		g.log.Error("plan load failed, using default plan", "key", g.key, "error", err)
		return models.DefaultWeekPlan()
	}
	if !found {
		return models.DefaultWeekPlan()
	}

	var p models.WeekPlan
	if err := json.Unmarshal(blob, &p); err != nil {
		g.log.Error("plan blob does not decode, using default plan", "key", g.key, "error", err)
		return models.DefaultWeekPlan()
	}
	return p
}

// Save persists the plan under the gateway's key. Errors are logged and
// dropped; the caller's in-memory plan stays authoritative either way.
func (g *Gateway) Save(ctx context.Context, p models.WeekPlan) {
	g.mu.Lock()
	defer g.mu.Unlock()

	blob, err := json.Marshal(p)
	if err != nil {
		g.log.Error("plan encode failed, dropping save", "key", g.key, "error", err)
		return
	}
	if err := g.store.Save(ctx, g.key, blob); err != nil {
		g.log.Error("plan save failed", "key", g.key, "error", err)
	}
}

// Default returns a fresh copy of the built-in starter plan.
func (g *Gateway) Default() models.WeekPlan {
	return models.DefaultWeekPlan()
}
