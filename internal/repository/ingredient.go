package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/recetario/recetario-go/internal/model"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

// IngredientRepository handles reads against the pre-seeded ingredient
// catalog. Ingredients are never created or modified through the API.
type IngredientRepository struct {
	db *sql.DB
}

// NewIngredientRepository creates a new IngredientRepository.
func NewIngredientRepository(db *sql.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List returns all catalog ingredients ordered by title.
func (r *IngredientRepository) List(ctx context.Context) ([]model.Ingredient, error) {
	query := `SELECT id, title FROM ingredients ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// GetByID retrieves a single catalog ingredient.
func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*model.Ingredient, error) {
	query := `SELECT id, title FROM ingredients WHERE id = ?`

	ing := &model.Ingredient{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ing.ID, &ing.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	return ing, nil
}

// Search returns ingredients whose title contains the query, case
// insensitively, ordered by title.
func (r *IngredientRepository) Search(ctx context.Context, q string) ([]model.Ingredient, error) {
	query := `SELECT id, title FROM ingredients WHERE LOWER(title) LIKE LOWER(?) ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query, "%"+strings.TrimSpace(q)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// ExistsTx reports whether an ingredient id exists, within the given
// transaction. Used by recipe writes to validate association targets before
// inserting them.
func (r *IngredientRepository) ExistsTx(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	var found int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM ingredients WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func scanIngredients(rows *sql.Rows) ([]model.Ingredient, error) {
	ingredients := []model.Ingredient{}
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Title); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}
