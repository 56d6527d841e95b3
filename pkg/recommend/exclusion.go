package recommend

import (
	"context"
	"time"

	"github.com/umputun/recipescope/pkg/cache"
	"github.com/umputun/recipescope/pkg/metrics"
	"github.com/umputun/recipescope/pkg/upstream"
)

// ExclusionWindow is the per-user set of recently shown recipes.
// Every add resets the set expiry to exactly ttl.
type ExclusionWindow struct {
	store cache.Store
	guard *upstream.Guard
	ttl   time.Duration
}

// NewExclusionWindow makes exclusion window, zero ttl defaults to 24h
func NewExclusionWindow(store cache.Store, guard *upstream.Guard, ttl time.Duration) *ExclusionWindow {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ExclusionWindow{store: store, guard: guard, ttl: ttl}
}

// Excluded returns ids already shown to the user
func (w *ExclusionWindow) Excluded(ctx context.Context, userID string) ([]string, error) {
	return upstream.Call(ctx, w.guard, "load exclusions", func(ctx context.Context) ([]string, error) {
		return w.store.SMembers(ctx, exclusionKey(userID))
	})
}

// Record adds the recipe to the window and refreshes expiry
func (w *ExclusionWindow) Record(ctx context.Context, userID, recipeID string) error {
	return w.guard.Do(ctx, "record exclusion", func(ctx context.Context) error {
		return w.store.SAdd(ctx, exclusionKey(userID), w.ttl, recipeID)
	})
}

// Reset clears the window
func (w *ExclusionWindow) Reset(ctx context.Context, userID string) error {
	err := w.guard.Do(ctx, "reset exclusions", func(ctx context.Context) error {
		return w.store.Del(ctx, exclusionKey(userID))
	})
	if err == nil {
		metrics.RecordExclusionReset()
	}
	return err
}

func exclusionKey(userID string) string { return "recommended:" + userID }
