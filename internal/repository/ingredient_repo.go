package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

type IngredientRepository interface {
	List(ctx context.Context, spec dto.FilterSpec, categoryID *uuid.UUID) ([]model.Ingredient, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error)
	Create(ctx context.Context, i *model.Ingredient) error
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Ingredient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ingredientRepo struct {
	crud[model.Ingredient]
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{newCRUD[model.Ingredient](db, "name", "created_at")}
}

func (r *ingredientRepo) List(ctx context.Context, spec dto.FilterSpec, categoryID *uuid.UUID) ([]model.Ingredient, int64, error) {
	return r.crud.List(ctx, spec, func(q *gorm.DB) *gorm.DB {
		if categoryID != nil {
			q = q.Where("category_id = ?", *categoryID)
		}
		return q
	})
}
