package server

import (
	"context"

	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// CreateRecipe stores a new recipe, id and creation time are assigned if empty
func (r *RepositoryAdapter) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	return r.repos.Recipe.CreateRecipe(ctx, recipe)
}

// GetRecipe returns recipe by id
func (r *RepositoryAdapter) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return r.repos.Recipe.GetRecipe(ctx, id)
}

// DeleteRecipe removes recipe with its favorite marks and returns the removed record
func (r *RepositoryAdapter) DeleteRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return r.repos.Recipe.DeleteRecipe(ctx, id)
}

// CountRecipes returns catalog size
func (r *RepositoryAdapter) CountRecipes(ctx context.Context) (int64, error) {
	return r.repos.Recipe.CountRecipes(ctx)
}

// ToggleFavorite flips the user's favorite mark on a recipe
func (r *RepositoryAdapter) ToggleFavorite(ctx context.Context, userID, recipeID string) (*domain.Favorite, error) {
	return r.repos.Favorite.ToggleFavorite(ctx, userID, recipeID)
}

// IsSubscriber reports the user's subscription flag, false for unknown users
func (r *RepositoryAdapter) IsSubscriber(ctx context.Context, userID string) (bool, error) {
	return r.repos.User.IsSubscriber(ctx, userID)
}

// Ping checks database connectivity
func (r *RepositoryAdapter) Ping(ctx context.Context) error {
	return r.repos.Ping(ctx)
}
