package service

import (
	"context"
	"errors"
	"strings"

	"github.com/recetario/recetario-go/internal/model"
	"github.com/recetario/recetario-go/internal/repository"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrSearchQueryMissing = errors.New("search query is required")
)

// IngredientService exposes the read-only ingredient catalog.
type IngredientService struct {
	repo *repository.IngredientRepository
}

// NewIngredientService creates a new IngredientService.
func NewIngredientService(repo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{repo: repo}
}

// List returns the full catalog ordered by title.
func (s *IngredientService) List(ctx context.Context) ([]model.Ingredient, error) {
	return s.repo.List(ctx)
}

// Get returns one catalog ingredient by id.
func (s *IngredientService) Get(ctx context.Context, id int64) (*model.Ingredient, error) {
	ing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrIngredientNotFound) {
		return nil, ErrIngredientNotFound
	}
	return ing, err
}

// Search returns catalog ingredients whose title contains q, case
// insensitively.
func (s *IngredientService) Search(ctx context.Context, q string) ([]model.Ingredient, error) {
	if strings.TrimSpace(q) == "" {
		return nil, ErrSearchQueryMissing
	}
	return s.repo.Search(ctx, q)
}
