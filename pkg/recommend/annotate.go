package recommend

import (
	"context"
	"errors"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/metrics"
	"github.com/umputun/recipescope/pkg/upstream"
)

//go:generate moq -out mocks/favorites.go -pkg mocks -skip-ensure -fmt goimports . Favorites

// Favorites looks up favorite marks
type Favorites interface {
	// FindFavorite returns the mark of (userID, recipeID), domain.ErrNotFound if there is none
	FindFavorite(ctx context.Context, userID, recipeID string) (*domain.Favorite, error)
}

// Annotator attaches the user's favorite state to a recipe
type Annotator struct {
	favorites Favorites
	guard     *upstream.Guard
}

// NewAnnotator makes annotator, lookups run under the catalog guard
func NewAnnotator(favorites Favorites, guard *upstream.Guard) *Annotator {
	return &Annotator{favorites: favorites, guard: guard}
}

// Enrich never fails, lookup errors degrade to not favorited
func (a *Annotator) Enrich(ctx context.Context, userID string, recipe domain.Recipe) domain.ItemResult {
	res := domain.ItemResult{Recipe: recipe}
	fav, err := upstream.Call(ctx, a.guard, "find favorite", func(ctx context.Context) (*domain.Favorite, error) {
		return a.favorites.FindFavorite(ctx, userID, recipe.ID)
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return res
	case err != nil:
		lgr.Printf("[WARN] favorite lookup for user %s, recipe %s failed: %v", userID, recipe.ID, err)
		metrics.RecordFavoriteLookupFailure()
		return res
	case fav == nil:
		return res
	}
	id := fav.ID
	res.IsFavorited, res.FavoriteID = true, &id
	return res
}
