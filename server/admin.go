package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/go-playground/validator/v10"

	"github.com/umputun/recipescope/pkg/domain"
)

// recipeRequest is the admin catalog submission
type recipeRequest struct {
	Name              string   `json:"name" validate:"required,max=200"`
	MinCookingTime    int      `json:"minCookingTime" validate:"required,gt=0"`
	MaxCookingTime    int      `json:"maxCookingTime" validate:"required,gtefield=MinCookingTime"`
	Calories          int      `json:"calories" validate:"required,gt=0"`
	RecipeType        string   `json:"recipeType" validate:"required,max=128"`
	Budget            string   `json:"budget" validate:"required,oneof=High Medium Low"`
	Categories        []string `json:"categories" validate:"required,min=1,dive,required"`
	DietaryPreference string   `json:"dietaryPreference" validate:"required,oneof=Meat Vegetarian Vegan 'Nut Free'"`
	TargetLifestyle   string   `json:"targetLifestyle" validate:"omitempty,oneof=senior student"`
	Description       string   `json:"description" validate:"required"`
	Image             string   `json:"image" validate:"required"`
	Price             float64  `json:"price" validate:"gte=0"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError converts validator failures to a domain validation error keyed by json field names
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	res := &domain.ValidationError{Fields: map[string]string{}}
	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.Index(field, "["); i > 0 {
			field = field[:i]
		}
		switch fe.Tag() {
		case "required":
			res.Fields[field] = "is required"
		case "oneof":
			res.Fields[field] = "must be one of: " + strings.ReplaceAll(fe.Param(), "'", "")
		case "gtefield":
			res.Fields[field] = "must not be less than minCookingTime"
		default:
			res.Fields[field] = fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
	}
	return res
}

// createRecipeHandler adds a recipe to the catalog
func (s *Server) createRecipeHandler(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.RecipeType = strings.TrimSpace(req.RecipeType)
	req.Description = strings.TrimSpace(s.sanitizer.Sanitize(req.Description))
	req.Image = filepath.Base(strings.TrimSpace(req.Image))
	if req.Image == "." || req.Image == string(filepath.Separator) {
		req.Image = ""
	}

	if err := s.validate.Struct(req); err != nil {
		renderDomainError(w, r, validationError(err), "create recipe")
		return
	}

	recipe := &domain.Recipe{
		Name:              req.Name,
		MinCookingTime:    req.MinCookingTime,
		MaxCookingTime:    req.MaxCookingTime,
		Calories:          req.Calories,
		RecipeType:        req.RecipeType,
		Budget:            domain.Budget(req.Budget),
		Categories:        req.Categories,
		DietaryPreference: domain.Dietary(req.DietaryPreference),
		TargetLifestyle:   domain.Lifestyle(req.TargetLifestyle),
		Description:       req.Description,
		Image:             req.Image,
		Price:             req.Price,
	}
	if err := s.db.CreateRecipe(r.Context(), recipe); err != nil {
		renderDomainError(w, r, err, "create recipe")
		return
	}
	lgr.Printf("[INFO] recipe %s %q created", recipe.ID, recipe.Name)
	renderJSON(w, r, http.StatusCreated, recipe)
}

// getRecipeHandler returns a catalog recipe by id
func (s *Server) getRecipeHandler(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.db.GetRecipe(r.Context(), r.PathValue("id"))
	if err != nil {
		renderDomainError(w, r, err, "get recipe")
		return
	}
	renderJSON(w, r, http.StatusOK, recipe)
}

// deleteRecipeHandler removes a recipe, its favorite marks and its image file
func (s *Server) deleteRecipeHandler(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.db.DeleteRecipe(r.Context(), r.PathValue("id"))
	if err != nil {
		renderDomainError(w, r, err, "delete recipe")
		return
	}

	if recipe.Image != "" {
		path := filepath.Join(s.config.GetImagesDir(), filepath.Base(recipe.Image))
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			lgr.Printf("[WARN] can't remove image %s of recipe %s: %v", path, recipe.ID, err)
		}
	}
	lgr.Printf("[INFO] recipe %s %q deleted", recipe.ID, recipe.Name)
	renderJSON(w, r, http.StatusOK, recipe)
}
