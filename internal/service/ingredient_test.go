package service

import (
	"context"
	"testing"

	"github.com/recetario/recetario-go/internal/repository"
)

func TestSearch_EmptyQuery(t *testing.T) {
	svc := NewIngredientService(repository.NewIngredientRepository(nil))

	_, err := svc.Search(context.Background(), "")
	if err != ErrSearchQueryMissing {
		t.Errorf("expected ErrSearchQueryMissing, got %v", err)
	}
}

func TestSearch_WhitespaceQuery(t *testing.T) {
	svc := NewIngredientService(repository.NewIngredientRepository(nil))

	_, err := svc.Search(context.Background(), "   ")
	if err != ErrSearchQueryMissing {
		t.Errorf("expected ErrSearchQueryMissing, got %v", err)
	}
}
