package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/recetario/recetario-go/internal/model"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository handles recipe persistence. Every read and write is
// scoped by the owning user id; a recipe belonging to another user is
// indistinguishable from a missing one.
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// BeginTx starts a new database transaction using the connection's default
// isolation level (REPEATABLE READ on MySQL, above the read-committed
// minimum recipe writes rely on).
func (r *RecipeRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// InsertTx inserts a recipe row within the transaction and sets the
// generated ID on the recipe struct.
func (r *RecipeRepository) InsertTx(ctx context.Context, tx *sql.Tx, recipe *model.Recipe) error {
	query := `INSERT INTO recipes (user_id, title, instructions) VALUES (?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, recipe.UserID, recipe.Title, recipe.Instructions)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	recipe.ID = id
	return nil
}

// ExistsForUserTx reports whether a recipe exists and is owned by the given
// user, within the transaction.
func (r *RecipeRepository) ExistsForUserTx(ctx context.Context, tx *sql.Tx, recipeID, userID int64) (bool, error) {
	var found int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM recipes WHERE id = ? AND user_id = ?`, recipeID, userID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// buildRecipeUpdate maps the sparse set of updatable recipe fields to a
// parameterized UPDATE scoped by (id, user_id). Title and instructions are
// the only updatable columns. Returns ok=false when neither is supplied.
func buildRecipeUpdate(title, instructions *string, recipeID, userID int64) (query string, args []any, ok bool) {
	query = `UPDATE recipes SET `
	if title != nil {
		query += `title = ?`
		args = append(args, *title)
	}
	if instructions != nil {
		if title != nil {
			query += `, `
		}
		query += `instructions = ?`
		args = append(args, *instructions)
	}
	if len(args) == 0 {
		return "", nil, false
	}

	query += ` WHERE id = ? AND user_id = ?`
	args = append(args, recipeID, userID)
	return query, args, true
}

// UpdateFieldsTx applies a partial update of title and/or instructions
// within the transaction. Nil fields are left untouched; supplying neither
// is a no-op.
func (r *RecipeRepository) UpdateFieldsTx(ctx context.Context, tx *sql.Tx, recipeID, userID int64, title, instructions *string) error {
	query, args, ok := buildRecipeUpdate(title, instructions, recipeID, userID)
	if !ok {
		return nil
	}

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// ClearIngredientsTx deletes all ingredient associations for a recipe
// within the transaction.
func (r *RecipeRepository) ClearIngredientsTx(ctx context.Context, tx *sql.Tx, recipeID int64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipeID)
	return err
}

// AddIngredientTx inserts one recipe-ingredient association within the
// transaction. Quantity and unit may be nil.
func (r *RecipeRepository) AddIngredientTx(ctx context.Context, tx *sql.Tx, recipeID int64, in model.RecipeIngredientInput) error {
	query := `INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit) VALUES (?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query, recipeID, in.IngredientID, in.Quantity, in.Unit)
	return err
}

// Delete removes a recipe owned by the given user. Associations go with it
// via ON DELETE CASCADE. Zero affected rows means the recipe does not exist
// or belongs to someone else; both surface as ErrRecipeNotFound.
func (r *RecipeRepository) Delete(ctx context.Context, recipeID, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ? AND user_id = ?`, recipeID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// recipeJoinQuery is the shared read query: recipes left-joined to their
// ingredient associations and the ingredient catalog, so recipes with no
// ingredients still produce a row. Ingredient rows come back ordered by
// title; grouping into per-recipe arrays happens in scanRecipeRows.
const recipeJoinQuery = `
	SELECT r.id, r.user_id, r.title, r.instructions, r.created_at,
		i.id, i.title, ri.quantity, ri.unit
	FROM recipes r
	LEFT JOIN recipe_ingredients ri ON r.id = ri.recipe_id
	LEFT JOIN ingredients i ON ri.ingredient_id = i.id`

// GetByID retrieves one recipe with its joined ingredient list, scoped by
// owner.
func (r *RecipeRepository) GetByID(ctx context.Context, recipeID, userID int64) (*model.RecipeResponse, error) {
	query := recipeJoinQuery + `
	WHERE r.id = ? AND r.user_id = ?
	ORDER BY i.title`

	rows, err := r.db.QueryContext(ctx, query, recipeID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes, err := scanRecipeRows(rows)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrRecipeNotFound
	}

	return &recipes[0], nil
}

// ListByUser retrieves all recipes owned by the user, most recent first,
// each with its ingredient list ordered by title.
func (r *RecipeRepository) ListByUser(ctx context.Context, userID int64) ([]model.RecipeResponse, error) {
	query := recipeJoinQuery + `
	WHERE r.user_id = ?
	ORDER BY r.created_at DESC, r.id DESC, i.title`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecipeRows(rows)
}

// scanRecipeRows groups flat join rows into recipes with ingredient arrays.
// Ingredient columns are NULL for recipes without associations; those rows
// yield a recipe with an empty (never nil) ingredient list. Rows for the
// same recipe are assumed adjacent, which the ORDER BY clauses guarantee.
func scanRecipeRows(rows *sql.Rows) ([]model.RecipeResponse, error) {
	recipes := []model.RecipeResponse{}

	for rows.Next() {
		var rec model.Recipe
		var ingID sql.NullInt64
		var ingTitle, quantity, unit sql.NullString

		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Title, &rec.Instructions, &rec.CreatedAt,
			&ingID, &ingTitle, &quantity, &unit,
		); err != nil {
			return nil, err
		}

		if len(recipes) == 0 || recipes[len(recipes)-1].ID != rec.ID {
			recipes = append(recipes, model.RecipeResponse{
				ID:           rec.ID,
				UserID:       rec.UserID,
				Title:        rec.Title,
				Instructions: rec.Instructions,
				CreatedAt:    rec.CreatedAt,
				Ingredients:  []model.RecipeIngredient{},
			})
		}

		if ingID.Valid {
			current := &recipes[len(recipes)-1]
			current.Ingredients = append(current.Ingredients, model.RecipeIngredient{
				ID:       ingID.Int64,
				Title:    ingTitle.String,
				Quantity: nullableString(quantity),
				Unit:     nullableString(unit),
			})
		}
	}

	return recipes, rows.Err()
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
