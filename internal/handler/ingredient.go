package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/recetario/recetario-go/internal/service"
)

// IngredientHandler handles HTTP requests for the read-only ingredient
// catalog.
type IngredientHandler struct {
	service *service.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(svc *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{service: svc}
}

// HandleList handles GET /api/v1/ingredients requests.
func (h *IngredientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to list ingredients"))
		return
	}

	writeJSON(w, http.StatusOK, ingredients)
}

// HandleGet handles GET /api/v1/ingredients/{id} requests.
func (h *IngredientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("ingredient not found"))
		return
	}

	ing, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to get ingredient"))
		return
	}

	writeJSON(w, http.StatusOK, ing)
}

// HandleSearch handles GET /api/v1/ingredients/search?q= requests.
func (h *IngredientHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, service.ErrSearchQueryMissing) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to search ingredients"))
		return
	}

	writeJSON(w, http.StatusOK, ingredients)
}
