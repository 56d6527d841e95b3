package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/go-playground/validator/v10"

	"github.com/umputun/recipescope/pkg/cache"
	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/upstream"
)

// hash field names of the stored preference vector
const (
	fieldLifestyle   = "targetLifestyle"
	fieldBudget      = "budget"
	fieldDietary     = "dietaryPreference"
	fieldRecipeType  = "recipeType"
	fieldCookingTime = "cookingTime"
)

// maxCookingMinutes bounds the submitted cooking time to one day
const maxCookingMinutes = 24 * 60

// PreferenceStore keeps per-user preference vectors in the cache, without expiry
type PreferenceStore struct {
	store    cache.Store
	guard    *upstream.Guard
	validate *validator.Validate
}

// NewPreferenceStore makes preference store
func NewPreferenceStore(store cache.Store, guard *upstream.Guard) *PreferenceStore {
	return &PreferenceStore{store: store, guard: guard, validate: validator.New()}
}

// Submit validates the input and replaces the stored vector wholesale.
// Fields missing from the input are dropped. Returns the vector in effect.
func (p *PreferenceStore) Submit(ctx context.Context, userID string, in domain.PreferenceInput) (domain.Preferences, error) {
	prefs, err := p.normalize(in)
	if err != nil {
		return domain.Preferences{}, err
	}

	err = p.guard.Do(ctx, "save preferences", func(ctx context.Context) error {
		return p.store.HReplace(ctx, preferenceKey(userID), toFields(prefs))
	})
	if err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

// Load returns the stored vector, domain.ErrNoPreferences if nothing is on file
func (p *PreferenceStore) Load(ctx context.Context, userID string) (domain.Preferences, error) {
	fields, err := upstream.Call(ctx, p.guard, "load preferences", func(ctx context.Context) (map[string]string, error) {
		return p.store.HGetAll(ctx, preferenceKey(userID))
	})
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs := fromFields(fields)
	if prefs.IsEmpty() {
		return domain.Preferences{}, fmt.Errorf("user %s: %w", userID, domain.ErrNoPreferences)
	}
	return prefs, nil
}

// normalize validates the input and converts it to a preference vector
func (p *PreferenceStore) normalize(in domain.PreferenceInput) (domain.Preferences, error) {
	in.TargetLifestyle = strings.TrimSpace(in.TargetLifestyle)
	in.Budget = strings.TrimSpace(in.Budget)
	in.DietaryPreference = strings.TrimSpace(in.DietaryPreference)
	in.RecipeType = strings.TrimSpace(in.RecipeType)
	in.CookingTime = strings.TrimSpace(in.CookingTime)

	if err := p.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.Preferences{}, fmt.Errorf("validate preferences: %w", err)
		}
		res := &domain.ValidationError{Fields: map[string]string{}}
		for _, fe := range verrs {
			res.Fields[fieldName(fe.Field())] = fieldMessage(fe)
		}
		return domain.Preferences{}, res
	}

	prefs := domain.Preferences{
		TargetLifestyle:   domain.Lifestyle(in.TargetLifestyle),
		Budget:            domain.Budget(in.Budget),
		DietaryPreference: domain.Dietary(in.DietaryPreference),
		RecipeType:        in.RecipeType,
	}
	if in.CookingTime != "" {
		minutes, err := strconv.Atoi(in.CookingTime)
		if err != nil {
			return domain.Preferences{}, domain.NewValidationError(fieldCookingTime, "must be an integer number of minutes")
		}
		if minutes > maxCookingMinutes {
			return domain.Preferences{}, domain.NewValidationError(fieldCookingTime,
				fmt.Sprintf("must not exceed %d minutes", maxCookingMinutes))
		}
		prefs.CookingTime = &minutes
	}
	return prefs, nil
}

func toFields(p domain.Preferences) map[string]string {
	res := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			res[k] = v
		}
	}
	set(fieldLifestyle, string(p.TargetLifestyle))
	set(fieldBudget, string(p.Budget))
	set(fieldDietary, string(p.DietaryPreference))
	set(fieldRecipeType, p.RecipeType)
	if p.CookingTime != nil {
		res[fieldCookingTime] = strconv.Itoa(*p.CookingTime)
	}
	return res
}

func fromFields(fields map[string]string) domain.Preferences {
	prefs := domain.Preferences{
		TargetLifestyle:   domain.Lifestyle(fields[fieldLifestyle]),
		Budget:            domain.Budget(fields[fieldBudget]),
		DietaryPreference: domain.Dietary(fields[fieldDietary]),
		RecipeType:        fields[fieldRecipeType],
	}
	if v, ok := fields[fieldCookingTime]; ok {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			lgr.Printf("[WARN] ignore stored cooking time %q: %v", v, err)
			return prefs
		}
		prefs.CookingTime = &minutes
	}
	return prefs
}

// fieldName converts struct field name to the wire name, TargetLifestyle -> targetLifestyle
func fieldName(f string) string {
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), "'", "")
	case "number":
		return "must be an integer number of minutes"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func preferenceKey(userID string) string { return "personalization:" + userID }
