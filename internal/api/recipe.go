package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/culinacart/recipes-api/internal/logger"
	"github.com/culinacart/recipes-api/internal/models"
	"github.com/culinacart/recipes-api/internal/service"
	"github.com/culinacart/recipes-api/internal/types"
)

// RecipeHandler serves the recipe CRUD endpoints.
type RecipeHandler struct {
	recipes *service.RecipeService
	log     *logger.Logger
}

func NewRecipeHandler(recipes *service.RecipeService, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		log:     log,
	}
}

// Create persists a new recipe. Requires a valid bearer token.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid recipe payload")
		return
	}

	recipe := models.Recipe{
		Name:       req.Name,
		Difficulty: req.Difficulty,
		Vegetarian: req.Vegetarian,
	}

	created, err := h.recipes.Create(c.Request.Context(), &recipe)
	if err != nil {
		h.log.Error().Err(err).Msg("recipe create failed")
		respondError(c, http.StatusInternalServerError, "Failed to save recipes!")
		return
	}

	respondData(c, http.StatusCreated, created)
}

// List returns all recipes. No auth required; an empty table yields an
// empty array.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("recipe list failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch recipes!")
		return
	}

	respondData(c, http.StatusOK, recipes)
}

// Get returns a single recipe by ID. No auth required.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := h.recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			respondError(c, http.StatusNotFound, "Recipe not found")
			return
		}
		h.log.Error().Err(err).Str("id", id.String()).Msg("recipe get failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch recipes!")
		return
	}

	respondData(c, http.StatusOK, recipe)
}

// Update merges the provided fields into an existing recipe. Requires a
// valid bearer token.
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := h.recipeID(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid recipe payload")
		return
	}

	updated, err := h.recipes.Update(c.Request.Context(), id, req.Fields())
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			respondError(c, http.StatusNotFound, "Recipe not found")
			return
		}
		h.log.Error().Err(err).Str("id", id.String()).Msg("recipe update failed")
		respondError(c, http.StatusInternalServerError, "Failed to update recipes!")
		return
	}

	respondData(c, http.StatusOK, updated)
}

// Delete removes a recipe. Requires a valid bearer token. Deleting the same
// ID twice fails with 404 on the second call.
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := h.recipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			respondError(c, http.StatusNotFound, "Recipe not found")
			return
		}
		h.log.Error().Err(err).Str("id", id.String()).Msg("recipe delete failed")
		respondError(c, http.StatusInternalServerError, "Failed to delete recipes!")
		return
	}

	respondMessage(c, http.StatusOK, "Recipe successfully deleted")
}

func (h *RecipeHandler) recipeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid recipe id")
		return uuid.Nil, false
	}
	return id, true
}
