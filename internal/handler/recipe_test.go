package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/recetario/recetario-go/internal/middleware"
	"github.com/recetario/recetario-go/internal/repository"
	"github.com/recetario/recetario-go/internal/service"
)

func newTestRecipeHandler() *RecipeHandler {
	return NewRecipeHandler(service.NewRecipeService(
		repository.NewRecipeRepository(nil),
		repository.NewIngredientRepository(nil),
	))
}

func TestHandleCreate_Unauthorized(t *testing.T) {
	h := newTestRecipeHandler()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandleCreate_MissingFields(t *testing.T) {
	h := newTestRecipeHandler()

	body := `{"title": "Tortilla"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", strings.NewReader(body))
	r = r.WithContext(middleware.WithUserID(r.Context(), 1))
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["message"] == "" {
		t.Error("expected a message field in the error body")
	}
}

func TestHandleCreate_BodyTooLarge(t *testing.T) {
	h := newTestRecipeHandler()

	// A syntactically valid body just over the 1MB cap: the decoder must
	// hit the MaxBytesReader limit mid-string and surface 413, not 400.
	body := `{"title":"` + strings.Repeat("a", 1<<20) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", strings.NewReader(body))
	r = r.WithContext(middleware.WithUserID(r.Context(), 1))
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, r)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestHandleCreate_InvalidBody(t *testing.T) {
	h := newTestRecipeHandler()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", strings.NewReader(`{not json`))
	r = r.WithContext(middleware.WithUserID(r.Context(), 1))
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
