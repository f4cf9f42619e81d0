package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/recetario/recetario-go/internal/middleware"
	"github.com/recetario/recetario-go/internal/model"
	"github.com/recetario/recetario-go/internal/service"
)

// RecipeHandler handles HTTP requests for recipe operations. All routes sit
// behind the JWT middleware; the authenticated user id scopes every call.
type RecipeHandler struct {
	service *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

// HandleList handles GET /api/v1/recipes requests.
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipes, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to list recipes"))
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// HandleGet handles GET /api/v1/recipes/{id} requests.
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipeID, ok := recipeIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("recipe not found"))
		return
	}

	recipe, err := h.service.Get(r.Context(), userID, recipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to get recipe"))
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// HandleCreate handles POST /api/v1/recipes requests.
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateRecipeRequest
	if !decodeJSON(w, r, &req, 1<<20) {
		return
	}

	recipe, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isRecipeValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to create recipe"))
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}

// HandleUpdate handles PUT /api/v1/recipes/{id} requests.
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipeID, ok := recipeIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("recipe not found"))
		return
	}

	var req model.UpdateRecipeRequest
	if !decodeJSON(w, r, &req, 1<<20) {
		return
	}

	recipe, err := h.service.Update(r.Context(), userID, recipeID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case isRecipeValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("failed to update recipe"))
		}
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// HandleDelete handles DELETE /api/v1/recipes/{id} requests.
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipeID, ok := recipeIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("recipe not found"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, recipeID); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to delete recipe"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "recipe deleted"})
}

// recipeIDParam parses the {id} URL parameter. A non-numeric id can never
// match a row, so callers treat it as not found.
func recipeIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func isRecipeValidationError(err error) bool {
	var unknownIngredient *service.UnknownIngredientError
	return errors.Is(err, service.ErrRecipeFieldsRequired) ||
		errors.Is(err, service.ErrIngredientIDRequired) ||
		errors.As(err, &unknownIngredient)
}
