package domain

// Lifestyle is the audience a recipe targets
type Lifestyle string

// Budget is the cost tier of a recipe
type Budget string

// Dietary is the dietary preference a recipe satisfies
type Dietary string

const (
	LifestyleSenior  Lifestyle = "senior"
	LifestyleStudent Lifestyle = "student"

	BudgetHigh   Budget = "High"
	BudgetMedium Budget = "Medium"
	BudgetLow    Budget = "Low"

	DietaryMeat       Dietary = "Meat"
	DietaryVegetarian Dietary = "Vegetarian"
	DietaryVegan      Dietary = "Vegan"
	DietaryNutFree    Dietary = "Nut Free"
)

// Preferences is the preference vector of a single user.
// Empty strings and a nil CookingTime mean the field is not set.
type Preferences struct {
	TargetLifestyle   Lifestyle `json:"targetLifestyle,omitempty"`
	Budget            Budget    `json:"budget,omitempty"`
	DietaryPreference Dietary   `json:"dietaryPreference,omitempty"`
	RecipeType        string    `json:"recipeType,omitempty"`
	CookingTime       *int      `json:"cookingTime,omitempty"`
}

// IsEmpty reports whether no field is set
func (p Preferences) IsEmpty() bool {
	return p.TargetLifestyle == "" && p.Budget == "" && p.DietaryPreference == "" &&
		p.RecipeType == "" && p.CookingTime == nil
}

// PreferenceInput is a raw preference submission before validation.
// CookingTime holds the textual form of the submitted value, integer or numeric string.
type PreferenceInput struct {
	TargetLifestyle   string `validate:"omitempty,oneof=senior student"`
	Budget            string `validate:"omitempty,oneof=High Medium Low"`
	DietaryPreference string `validate:"omitempty,oneof=Meat Vegetarian Vegan 'Nut Free'"`
	RecipeType        string `validate:"omitempty,max=128"`
	CookingTime       string `validate:"omitempty,number"`
}
