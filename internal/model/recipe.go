package model

import "time"

// Recipe represents a recipe row in the database.
type Recipe struct {
	ID           int64
	UserID       int64
	Title        string
	Instructions string
	CreatedAt    time.Time
}

// RecipeIngredientInput is one entry of the ingredient list supplied on
// create/update. Only catalog ingredients may be referenced, by id.
type RecipeIngredientInput struct {
	IngredientID int64   `json:"ingredient_id"`
	Quantity     *string `json:"quantity,omitempty"`
	Unit         *string `json:"unit,omitempty"`
}

// CreateRecipeRequest represents a recipe creation request. All three fields
// are required and the ingredient list must be non-empty.
type CreateRecipeRequest struct {
	Title        string                  `json:"title"`
	Instructions string                  `json:"instructions"`
	Ingredients  []RecipeIngredientInput `json:"ingredients"`
}

// UpdateRecipeRequest represents a partial recipe update. Nil fields are left
// untouched. A nil Ingredients means the association set is not modified; a
// pointer to an empty slice clears it.
type UpdateRecipeRequest struct {
	Title        *string                  `json:"title"`
	Instructions *string                  `json:"instructions"`
	Ingredients  *[]RecipeIngredientInput `json:"ingredients"`
}

// RecipeIngredient is one joined ingredient in a recipe response, ordered by
// ingredient title.
type RecipeIngredient struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Quantity *string `json:"quantity"`
	Unit     *string `json:"unit"`
}

// RecipeResponse represents a recipe with its joined ingredient list.
// Ingredients is always present, an empty array when the recipe has none.
type RecipeResponse struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"user_id"`
	Title        string             `json:"title"`
	Instructions string             `json:"instructions"`
	CreatedAt    time.Time          `json:"created_at"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
}
