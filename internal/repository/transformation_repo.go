package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

type TransformationRepository interface {
	List(ctx context.Context, spec dto.FilterSpec, purchaseID *uuid.UUID) ([]model.Transformation, int64, error)
	// ListByPurchase returns every transformation of a purchase, unpaginated —
	// used by the purchase summary rollup which must see the full set.
	ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]model.Transformation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transformation, error)
	Create(ctx context.Context, t *model.Transformation) error
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Transformation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transformationRepo struct {
	crud[model.Transformation]
}

func NewTransformationRepository(db *gorm.DB) TransformationRepository {
	// Transformations sort and range on their event time, not creation time.
	return &transformationRepo{newCRUD[model.Transformation](db, "name", "transformed_at")}
}

func (r *transformationRepo) List(ctx context.Context, spec dto.FilterSpec, purchaseID *uuid.UUID) ([]model.Transformation, int64, error) {
	return r.crud.List(ctx, spec, func(q *gorm.DB) *gorm.DB {
		if purchaseID != nil {
			q = q.Where("purchase_id = ?", *purchaseID)
		}
		return q
	})
}

func (r *transformationRepo) ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]model.Transformation, error) {
	var list []model.Transformation
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("transformed_at DESC").
		Find(&list).Error
	return list, err
}
