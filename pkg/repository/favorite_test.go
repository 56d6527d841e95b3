package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/recipescope/pkg/domain"
)

func TestFavoriteRepository_Toggle(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	recipe := &domain.Recipe{Name: "pie"}
	require.NoError(t, repos.Recipe.CreateRecipe(ctx, recipe))

	// add
	fav, err := repos.Favorite.ToggleFavorite(ctx, "u1", recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, fav)
	assert.Equal(t, "u1", fav.UserID)
	assert.Equal(t, recipe.ID, fav.RecipeID)
	assert.NotEmpty(t, fav.ID)

	found, err := repos.Favorite.FindFavorite(ctx, "u1", recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, fav.ID, found.ID)

	// other user sees nothing
	_, err = repos.Favorite.FindFavorite(ctx, "u2", recipe.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// remove
	fav, err = repos.Favorite.ToggleFavorite(ctx, "u1", recipe.ID)
	require.NoError(t, err)
	assert.Nil(t, fav)
	_, err = repos.Favorite.FindFavorite(ctx, "u1", recipe.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFavoriteRepository_UnknownRecipe(t *testing.T) {
	repos := setupTestDB(t)
	_, err := repos.Favorite.ToggleFavorite(context.Background(), "u1", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
