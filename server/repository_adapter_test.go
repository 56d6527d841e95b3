package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/repository"
	"github.com/umputun/recipescope/server/mocks"
)

func setupAdapter(t *testing.T) (*RepositoryAdapter, *repository.Repositories) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return NewRepositoryAdapter(repos), repos
}

func TestRepositoryAdapter(t *testing.T) {
	adapter, repos := setupAdapter(t)
	ctx := context.Background()
	require.NoError(t, adapter.Ping(ctx))

	recipe := &domain.Recipe{Name: "pie", MinCookingTime: 30, MaxCookingTime: 60, Calories: 500, RecipeType: "dessert",
		Budget: domain.BudgetMedium, Categories: []string{"sweet"}, DietaryPreference: domain.DietaryVegetarian,
		Description: "apple pie", Image: "pie.jpg"}
	require.NoError(t, adapter.CreateRecipe(ctx, recipe))
	require.NotEmpty(t, recipe.ID)

	got, err := adapter.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "pie", got.Name)

	count, err := adapter.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	user := &domain.User{Email: "sub@example.com", Subscribed: true}
	require.NoError(t, repos.User.CreateUser(ctx, user))
	sub, err := adapter.IsSubscriber(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, sub)
	sub, err = adapter.IsSubscriber(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, sub)

	fav, err := adapter.ToggleFavorite(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, fav)
	fav, err = adapter.ToggleFavorite(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Nil(t, fav)

	deleted, err := adapter.DeleteRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, deleted.ID)
	_, err = adapter.GetRecipe(ctx, recipe.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepositoryAdapter_ThroughServer(t *testing.T) {
	adapter, _ := setupAdapter(t)
	srv := New(testConfig(t.TempDir()), adapter, &mocks.RecommenderMock{}, nil, "1.0.0", false)

	w := serve(t, srv, "POST", "/api/v1/recipes", adminToken(t), validRecipe)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, ok := decodeBody(t, w)["id"].(string)
	require.True(t, ok)

	w = serve(t, srv, "POST", "/api/v1/favorites/"+id, userToken(t), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["isFavorited"])

	w = serve(t, srv, "POST", "/api/v1/favorites/missing", userToken(t), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, srv, "GET", "/api/v1/recipes/"+id, adminToken(t), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lentil Soup", decodeBody(t, w)["name"])

	w = serve(t, srv, "DELETE", "/api/v1/recipes/"+id, adminToken(t), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(t, srv, "GET", "/api/v1/status", "", "")
	assert.InDelta(t, 0, decodeBody(t, w)["recipes"], 0.001)
}
