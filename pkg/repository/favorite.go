package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/recipescope/pkg/domain"
)

// FavoriteRepository handles favorite marks
type FavoriteRepository struct {
	db *sqlx.DB
}

type favoriteSQL struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	RecipeID  string `db:"recipe_id"`
	CreatedAt int64  `db:"created_at"`
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// FindFavorite returns the user's favorite mark for a recipe, domain.ErrNotFound if not favorited
func (r *FavoriteRepository) FindFavorite(ctx context.Context, userID, recipeID string) (*domain.Favorite, error) {
	var row favoriteSQL
	err := r.db.GetContext(ctx, &row,
		r.db.Rebind("SELECT id, user_id, recipe_id, created_at FROM favorites WHERE user_id = ? AND recipe_id = ?"),
		userID, recipeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("favorite %s/%s: %w", userID, recipeID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	return row.toDomain(), nil
}

// ToggleFavorite adds the mark if absent and removes it if present.
// Returns the created mark, or nil when the mark was removed. Unknown recipe gives domain.ErrNotFound.
func (r *FavoriteRepository) ToggleFavorite(ctx context.Context, userID, recipeID string) (*domain.Favorite, error) {
	var result *domain.Favorite
	err := withRetry(ctx, func() error {
		result = nil
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		var exists int
		if err := tx.GetContext(ctx, &exists, tx.Rebind("SELECT COUNT(*) FROM recipes WHERE id = ?"), recipeID); err != nil {
			return fmt.Errorf("check recipe: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("recipe %s: %w", recipeID, domain.ErrNotFound)
		}

		res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?"), userID, recipeID)
		if err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}
		removed, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("get affected rows: %w", err)
		}

		if removed == 0 {
			row := favoriteSQL{ID: uuid.NewString(), UserID: userID, RecipeID: recipeID, CreatedAt: time.Now().UTC().UnixNano()}
			query := `INSERT INTO favorites (id, user_id, recipe_id, created_at) VALUES (:id, :user_id, :recipe_id, :created_at)`
			if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
				return fmt.Errorf("insert favorite: %w", err)
			}
			result = row.toDomain()
		}
		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f *favoriteSQL) toDomain() *domain.Favorite {
	return &domain.Favorite{ID: f.ID, UserID: f.UserID, RecipeID: f.RecipeID, CreatedAt: nanoTime(f.CreatedAt)}
}
