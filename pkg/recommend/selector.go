package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/upstream"
)

//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog

// Catalog is the durable recipe store queried by the cascade
type Catalog interface {
	// FindLatest returns the newest recipe matching the filter, domain.ErrNotFound if none
	FindLatest(ctx context.Context, f domain.RecipeFilter) (*domain.Recipe, error)
}

// cascade step numbers
const (
	StepStrict          = 1
	StepLifestyleBudget = 2
	StepLifestyle       = 3
	StepBudget          = 4
	StepDietary         = 5
	StepAny             = 6
	StepReset           = 7
)

// Selector picks one recipe by relaxing preference constraints in a fixed order:
// strict match, lifestyle and budget, lifestyle, budget, dietary, anything unseen,
// and finally anything at all after clearing the exclusion window.
type Selector struct {
	catalog   Catalog
	window    *ExclusionWindow
	guard     *upstream.Guard
	tolerance int
}

// NewSelector makes selector. tolerance is the cooking time window in minutes around the preference.
func NewSelector(catalog Catalog, window *ExclusionWindow, guard *upstream.Guard, tolerance int) *Selector {
	return &Selector{catalog: catalog, window: window, guard: guard, tolerance: tolerance}
}

type cascadeStep struct {
	step   int
	filter domain.RecipeFilter
}

// Select returns the chosen recipe and the cascade step which produced it.
// Returns domain.ErrNoCandidate when the catalog is empty.
func (s *Selector) Select(ctx context.Context, userID string, prefs domain.Preferences, excluded []string) (*domain.Recipe, int, error) {
	for _, cs := range s.steps(prefs, excluded) {
		recipe, err := s.find(ctx, cs.filter)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, 0, err
		}
		return recipe, cs.step, nil
	}

	if len(excluded) == 0 {
		return nil, 0, fmt.Errorf("catalog is empty: %w", domain.ErrNoCandidate)
	}

	// everything eligible was already shown, start over
	lgr.Printf("[DEBUG] user %s exhausted catalog with %d exclusions, reset", userID, len(excluded))
	if err := s.window.Reset(ctx, userID); err != nil {
		return nil, 0, err
	}
	recipe, err := s.find(ctx, domain.RecipeFilter{})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, 0, fmt.Errorf("catalog is empty after reset: %w", domain.ErrNoCandidate)
	}
	if err != nil {
		return nil, 0, err
	}
	return recipe, StepReset, nil
}

// steps builds the relaxation sequence. A relaxed step without constraints and a step
// repeating an earlier filter are dropped, neither can match anything new.
func (s *Selector) steps(p domain.Preferences, excluded []string) []cascadeStep {
	strict := domain.RecipeFilter{RecipeType: p.RecipeType, Budget: p.Budget, DietaryPreference: p.DietaryPreference,
		TargetLifestyle: p.TargetLifestyle}
	if p.CookingTime != nil {
		strict.CookingTime, strict.CookingTolerance = p.CookingTime, s.tolerance
	}

	all := []cascadeStep{
		{StepStrict, strict},
		{StepLifestyleBudget, domain.RecipeFilter{TargetLifestyle: p.TargetLifestyle, Budget: p.Budget}},
		{StepLifestyle, domain.RecipeFilter{TargetLifestyle: p.TargetLifestyle}},
		{StepBudget, domain.RecipeFilter{Budget: p.Budget}},
		{StepDietary, domain.RecipeFilter{DietaryPreference: p.DietaryPreference}},
		{StepAny, domain.RecipeFilter{}},
	}

	res := make([]cascadeStep, 0, len(all))
	for _, cs := range all {
		relaxed := cs.step != StepStrict && cs.step != StepAny
		if relaxed && reflect.DeepEqual(cs.filter, domain.RecipeFilter{}) {
			continue // nothing to relax to, the unconstrained step covers it
		}
		if containsFilter(res, cs.filter) {
			continue
		}
		res = append(res, cs)
	}
	for i := range res {
		res[i].filter.ExcludeIDs = excluded
	}
	return res
}

func (s *Selector) find(ctx context.Context, f domain.RecipeFilter) (*domain.Recipe, error) {
	return upstream.Call(ctx, s.guard, "find recipe", func(ctx context.Context) (*domain.Recipe, error) {
		return s.catalog.FindLatest(ctx, f)
	})
}

func containsFilter(steps []cascadeStep, f domain.RecipeFilter) bool {
	for _, cs := range steps {
		if reflect.DeepEqual(cs.filter, f) {
			return true
		}
	}
	return false
}
