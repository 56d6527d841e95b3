package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/recipescope/pkg/domain"
)

// RecipeRepository handles recipe catalog operations
type RecipeRepository struct {
	db *sqlx.DB
}

// recipeSQL is the database representation of a recipe
type recipeSQL struct {
	ID                string        `db:"id"`
	Name              string        `db:"name"`
	MinCookingTime    int           `db:"min_cooking_time"`
	MaxCookingTime    int           `db:"max_cooking_time"`
	Calories          int           `db:"calories"`
	RecipeType        string        `db:"recipe_type"`
	Budget            string        `db:"budget"`
	Categories        categoriesSQL `db:"categories"`
	DietaryPreference string        `db:"dietary_preference"`
	TargetLifestyle   string        `db:"target_lifestyle"`
	Description       string        `db:"description"`
	Image             string        `db:"image"`
	Price             float64       `db:"price"`
	CreatedAt         int64         `db:"created_at"`
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *sqlx.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// CreateRecipe inserts a recipe. Missing ID and CreatedAt are assigned.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO recipes (id, name, min_cooking_time, max_cooking_time, calories, recipe_type, budget,
			categories, dietary_preference, target_lifestyle, description, image, price, created_at)
		VALUES (:id, :name, :min_cooking_time, :max_cooking_time, :calories, :recipe_type, :budget,
			:categories, :dietary_preference, :target_lifestyle, :description, :image, :price, :created_at)
	`
	row := toRecipeSQL(recipe)
	return withRetry(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		return nil
	})
}

// GetRecipe retrieves a recipe by ID
func (r *RecipeRepository) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	var row recipeSQL
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT * FROM recipes WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return row.toDomain(), nil
}

// DeleteRecipe removes a recipe with its favorites and returns the removed record
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe, err := r.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	err = withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM favorites WHERE recipe_id = ?"), id); err != nil {
			return fmt.Errorf("delete favorites: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM recipes WHERE id = ?"), id); err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// CountRecipes returns catalog size
func (r *RecipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM recipes"); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}

// FindLatest returns the newest recipe matching every set field of the filter.
// Ties on created_at are broken by id, descending. Returns domain.ErrNotFound on no match.
func (r *RecipeRepository) FindLatest(ctx context.Context, f domain.RecipeFilter) (*domain.Recipe, error) {
	query, args, err := r.buildFindQuery(f)
	if err != nil {
		return nil, err
	}

	var row recipeSQL
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no recipe for filter: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find latest recipe: %w", err)
	}
	return row.toDomain(), nil
}

func (r *RecipeRepository) buildFindQuery(f domain.RecipeFilter) (string, []interface{}, error) {
	var conds []string
	var args []interface{}

	addEq := func(column, value string) {
		if value == "" {
			return
		}
		conds = append(conds, column+" = ?")
		args = append(args, value)
	}
	addEq("recipe_type", f.RecipeType)
	addEq("budget", string(f.Budget))
	addEq("dietary_preference", string(f.DietaryPreference))
	addEq("target_lifestyle", string(f.TargetLifestyle))

	if f.CookingTime != nil {
		// recipe range overlaps [t-tol, t+tol]
		conds = append(conds, "min_cooking_time <= ?", "max_cooking_time >= ?")
		args = append(args, *f.CookingTime+f.CookingTolerance, *f.CookingTime-f.CookingTolerance)
	}
	if len(f.ExcludeIDs) > 0 {
		conds = append(conds, "id NOT IN (?)")
		args = append(args, f.ExcludeIDs)
	}

	query := "SELECT * FROM recipes"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT 1"

	if len(f.ExcludeIDs) > 0 {
		var err error
		if query, args, err = sqlx.In(query, args...); err != nil {
			return "", nil, fmt.Errorf("expand exclusions: %w", err)
		}
	}
	return r.db.Rebind(query), args, nil
}

func toRecipeSQL(r *domain.Recipe) *recipeSQL {
	return &recipeSQL{
		ID:                r.ID,
		Name:              r.Name,
		MinCookingTime:    r.MinCookingTime,
		MaxCookingTime:    r.MaxCookingTime,
		Calories:          r.Calories,
		RecipeType:        r.RecipeType,
		Budget:            string(r.Budget),
		Categories:        categoriesSQL(r.Categories),
		DietaryPreference: string(r.DietaryPreference),
		TargetLifestyle:   string(r.TargetLifestyle),
		Description:       r.Description,
		Image:             r.Image,
		Price:             r.Price,
		CreatedAt:         r.CreatedAt.UnixNano(),
	}
}

func (r *recipeSQL) toDomain() *domain.Recipe {
	return &domain.Recipe{
		ID:                r.ID,
		Name:              r.Name,
		MinCookingTime:    r.MinCookingTime,
		MaxCookingTime:    r.MaxCookingTime,
		Calories:          r.Calories,
		RecipeType:        r.RecipeType,
		Budget:            domain.Budget(r.Budget),
		Categories:        []string(r.Categories),
		DietaryPreference: domain.Dietary(r.DietaryPreference),
		TargetLifestyle:   domain.Lifestyle(r.TargetLifestyle),
		Description:       r.Description,
		Image:             r.Image,
		Price:             r.Price,
		CreatedAt:         nanoTime(r.CreatedAt),
	}
}
