package domain

import "time"

// Recipe represents a catalog item served to users
type Recipe struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	MinCookingTime    int       `json:"minCookingTime"`
	MaxCookingTime    int       `json:"maxCookingTime"`
	Calories          int       `json:"calories"`
	RecipeType        string    `json:"recipeType"`
	Budget            Budget    `json:"budget"`
	Categories        []string  `json:"categories"`
	DietaryPreference Dietary   `json:"dietaryPreference"`
	TargetLifestyle   Lifestyle `json:"targetLifestyle"`
	Description       string    `json:"description"`
	Image             string    `json:"image"`
	Price             float64   `json:"price"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ItemResult is a recipe annotated with the requesting user's favorite state
type ItemResult struct {
	Recipe
	IsFavorited bool    `json:"isFavorited"`
	FavoriteID  *string `json:"favoriteId"`
}

// Favorite marks a recipe starred by a user
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	RecipeID  string    `json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecipeFilter describes one catalog query of the selection cascade.
// Zero values mean "no constraint" for the corresponding field.
type RecipeFilter struct {
	RecipeType        string
	Budget            Budget
	DietaryPreference Dietary
	TargetLifestyle   Lifestyle
	CookingTime       *int
	CookingTolerance  int
	ExcludeIDs        []string
}
