package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recetario/recetario-go/internal/model"
	"github.com/recetario/recetario-go/internal/repository"
)

var (
	ErrRecipeFieldsRequired = errors.New("title, instructions and ingredients are required")
	ErrIngredientIDRequired = errors.New("every ingredient must reference a catalog ingredient by id")
	ErrRecipeNotFound       = errors.New("recipe not found")
)

// UnknownIngredientError reports a recipe write that referenced an
// ingredient id missing from the catalog.
type UnknownIngredientError struct {
	ID int64
}

func (e *UnknownIngredientError) Error() string {
	return fmt.Sprintf("ingredient with id %d does not exist", e.ID)
}

// RecipeService owns the invariant that a recipe and its ingredient
// associations are written atomically: a write either commits the recipe
// row and every association, or nothing at all.
type RecipeService struct {
	recipes     *repository.RecipeRepository
	ingredients *repository.IngredientRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes *repository.RecipeRepository, ingredients *repository.IngredientRepository) *RecipeService {
	return &RecipeService{recipes: recipes, ingredients: ingredients}
}

// Create inserts a recipe and its ingredient associations in one
// transaction and returns the committed state re-read from the store.
// Validation failures before the transaction opens cost no connection.
func (s *RecipeService) Create(ctx context.Context, userID int64, req model.CreateRecipeRequest) (*model.RecipeResponse, error) {
	if req.Title == "" || req.Instructions == "" || len(req.Ingredients) == 0 {
		return nil, ErrRecipeFieldsRequired
	}

	tx, err := s.recipes.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	recipe := &model.Recipe{
		UserID:       userID,
		Title:        req.Title,
		Instructions: req.Instructions,
	}
	if err := s.recipes.InsertTx(ctx, tx, recipe); err != nil {
		return nil, err
	}

	if err := s.addIngredients(ctx, tx, recipe.ID, req.Ingredients); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.recipes.GetByID(ctx, recipe.ID, userID)
}

// Update applies a partial update to a recipe owned by the user. Title and
// instructions change only when supplied. A supplied ingredient list fully
// replaces the existing associations — an explicit empty list clears them —
// while an omitted list leaves them untouched. Readers outside the
// transaction never observe the replacement half-done; the delete and
// re-insert commit together or not at all.
func (s *RecipeService) Update(ctx context.Context, userID, recipeID int64, req model.UpdateRecipeRequest) (*model.RecipeResponse, error) {
	tx, err := s.recipes.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	owned, err := s.recipes.ExistsForUserTx(ctx, tx, recipeID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrRecipeNotFound
	}

	if err := s.recipes.UpdateFieldsTx(ctx, tx, recipeID, userID, req.Title, req.Instructions); err != nil {
		return nil, err
	}

	if req.Ingredients != nil {
		if err := s.recipes.ClearIngredientsTx(ctx, tx, recipeID); err != nil {
			return nil, err
		}
		if err := s.addIngredients(ctx, tx, recipeID, *req.Ingredients); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.recipes.GetByID(ctx, recipeID, userID)
}

// addIngredients validates and inserts association rows in list order. Any
// failure aborts the caller's transaction: a missing id or an unknown
// catalog ingredient surfaces as a validation error and nothing is
// committed.
func (s *RecipeService) addIngredients(ctx context.Context, tx *sql.Tx, recipeID int64, ingredients []model.RecipeIngredientInput) error {
	for _, in := range ingredients {
		if in.IngredientID == 0 {
			return ErrIngredientIDRequired
		}

		exists, err := s.ingredients.ExistsTx(ctx, tx, in.IngredientID)
		if err != nil {
			return err
		}
		if !exists {
			return &UnknownIngredientError{ID: in.IngredientID}
		}

		if err := s.recipes.AddIngredientTx(ctx, tx, recipeID, in); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a recipe owned by the user.
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	err := s.recipes.Delete(ctx, recipeID, userID)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return ErrRecipeNotFound
	}
	return err
}

// Get returns one recipe with its ingredient list, scoped by owner.
func (s *RecipeService) Get(ctx context.Context, userID, recipeID int64) (*model.RecipeResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID, userID)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return nil, ErrRecipeNotFound
	}
	return recipe, err
}

// List returns all recipes owned by the user, most recent first.
func (s *RecipeService) List(ctx context.Context, userID int64) ([]model.RecipeResponse, error) {
	return s.recipes.ListByUser(ctx, userID)
}
