// Package recommend implements personalized recipe selection: preference storage,
// the daily quota, the anti-repeat exclusion window, the relaxation cascade and
// favorite annotation.
package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/recipescope/pkg/cache"
	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/metrics"
	"github.com/umputun/recipescope/pkg/upstream"
)

const defaultCallTimeout = 2 * time.Second

// Engine serves personalized recipes
type Engine struct {
	Preferences *PreferenceStore
	Quota       *QuotaGate
	Window      *ExclusionWindow
	Selector    *Selector
	Annotator   *Annotator
}

// Params defines engine settings
type Params struct {
	DailyLimit       int64
	QuotaTTL         time.Duration
	ExclusionTTL     time.Duration
	CookingTolerance int
	Location         *time.Location
	CacheGuard       *upstream.Guard // guards cache calls, nil makes a default one
	CatalogGuard     *upstream.Guard // guards catalog and favorite queries, nil makes a default one
}

// NewEngine makes engine with all components sharing the cache store
func NewEngine(store cache.Store, catalog Catalog, favorites Favorites, params Params) *Engine {
	if params.CacheGuard == nil {
		params.CacheGuard = upstream.New(upstream.Config{Name: "cache", Timeout: defaultCallTimeout})
	}
	if params.CatalogGuard == nil {
		params.CatalogGuard = upstream.New(upstream.Config{Name: "catalog", Timeout: defaultCallTimeout})
	}
	window := NewExclusionWindow(store, params.CacheGuard, params.ExclusionTTL)
	return &Engine{
		Preferences: NewPreferenceStore(store, params.CacheGuard),
		Quota: NewQuotaGate(store, params.CacheGuard, QuotaParams{
			DailyLimit: params.DailyLimit, TTL: params.QuotaTTL, Location: params.Location}),
		Window:    window,
		Selector:  NewSelector(catalog, window, params.CatalogGuard, params.CookingTolerance),
		Annotator: NewAnnotator(favorites, params.CatalogGuard),
	}
}

// GetPersonalizedItem selects the next recipe for the user.
// The quota unit is consumed before selection and is not returned if a later step fails.
func (e *Engine) GetPersonalizedItem(ctx context.Context, userID string, subscriber bool) (res *domain.ItemResult, err error) {
	st := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = domain.KindOf(err).String()
		}
		metrics.RecordRequest(outcome, time.Since(st))
	}()

	if err := e.Quota.Check(ctx, userID, subscriber); err != nil {
		return nil, err
	}

	var prefs domain.Preferences
	var excluded []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		prefs, err = e.Preferences.Load(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		excluded, err = e.Window.Excluded(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recipe, step, err := e.Selector.Select(ctx, userID, prefs, excluded)
	if err != nil {
		return nil, err
	}

	if err := e.Window.Record(ctx, userID, recipe.ID); err != nil {
		return nil, fmt.Errorf("record recipe %s: %w", recipe.ID, err)
	}
	metrics.RecordRecommendation(step)
	lgr.Printf("[DEBUG] recipe %s for user %s at step %d, %d excluded", recipe.ID, userID, step, len(excluded))

	item := e.Annotator.Enrich(ctx, userID, *recipe)
	return &item, nil
}

// SubmitPreferences validates and replaces the user's preference vector
func (e *Engine) SubmitPreferences(ctx context.Context, userID string, in domain.PreferenceInput) (domain.Preferences, error) {
	return e.Preferences.Submit(ctx, userID, in)
}

// LoadPreferences returns the stored preference vector, domain.ErrNoPreferences if none
func (e *Engine) LoadPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	return e.Preferences.Load(ctx, userID)
}

// QuotaUsage reports how many recommendations the user consumed today and the daily limit
func (e *Engine) QuotaUsage(ctx context.Context, userID string) (used, limit int64, err error) {
	return e.Quota.Usage(ctx, userID)
}
