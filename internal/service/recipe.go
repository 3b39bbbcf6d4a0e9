package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/culinacart/recipes-api/internal/models"
)

// ErrRecipeNotFound is returned when no recipe exists for the given ID.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe persistence.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create persists a new recipe and returns it with its generated ID.
func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Get retrieves a recipe by ID.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// List returns all recipes. The result is never nil, so an empty table
// serializes as an empty JSON array.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update merges the given fields into an existing recipe and returns the
// updated record. Updating an unknown ID fails with ErrRecipeNotFound.
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(recipe).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a recipe by ID. Deleting an ID that does not exist, or was
// already deleted, fails with ErrRecipeNotFound.
func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}
