package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

type PurchaseRepository interface {
	List(ctx context.Context, spec dto.FilterSpec, categoryID, createdBy *uuid.UUID) ([]model.Purchase, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	Create(ctx context.Context, p *model.Purchase) error
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Purchase, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type purchaseRepo struct {
	crud[model.Purchase]
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{newCRUD[model.Purchase](db, "item_name", "created_at")}
}

func (r *purchaseRepo) List(ctx context.Context, spec dto.FilterSpec, categoryID, createdBy *uuid.UUID) ([]model.Purchase, int64, error) {
	return r.crud.List(ctx, spec, func(q *gorm.DB) *gorm.DB {
		if categoryID != nil {
			q = q.Where("category_id = ?", *categoryID)
		}
		if createdBy != nil {
			q = q.Where("created_by = ?", *createdBy)
		}
		return q
	})
}
