package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

type ProductRepository interface {
	List(ctx context.Context, spec dto.FilterSpec, categoryID, ingredientID *uuid.UUID) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepo struct {
	crud[model.Product]
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{newCRUD[model.Product](db, "name", "created_at")}
}

func (r *productRepo) List(ctx context.Context, spec dto.FilterSpec, categoryID, ingredientID *uuid.UUID) ([]model.Product, int64, error) {
	return r.crud.List(ctx, spec, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Ingredient")
		if categoryID != nil {
			q = q.Where("category_id = ?", *categoryID)
		}
		if ingredientID != nil {
			q = q.Where("ingredient_id = ?", *ingredientID)
		}
		return q
	})
}

// FindByID fetches the product together with its ingredient in one call
// (embedded-relation fetch).
func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Ingredient").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
