package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

type InventoryRepository interface {
	List(ctx context.Context, spec dto.FilterSpec, categoryID *uuid.UUID) ([]model.Inventory, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inventory, error)
	Create(ctx context.Context, inv *model.Inventory) error
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Inventory, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddTransaction(ctx context.Context, tx *model.InventoryTransaction) error
	ListTransactions(ctx context.Context, inventoryID uuid.UUID, start, end *time.Time) ([]model.InventoryTransaction, error)
}

type inventoryRepo struct {
	crud[model.Inventory]
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{newCRUD[model.Inventory](db, "name", "created_at")}
}

func (r *inventoryRepo) List(ctx context.Context, spec dto.FilterSpec, categoryID *uuid.UUID) ([]model.Inventory, int64, error) {
	return r.crud.List(ctx, spec, func(q *gorm.DB) *gorm.DB {
		if categoryID != nil {
			q = q.Where("category_id = ?", *categoryID)
		}
		return q
	})
}

func (r *inventoryRepo) AddTransaction(ctx context.Context, tx *model.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *inventoryRepo) ListTransactions(ctx context.Context, inventoryID uuid.UUID, start, end *time.Time) ([]model.InventoryTransaction, error) {
	q := r.db.WithContext(ctx).Where("inventory_id = ?", inventoryID)
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at <= ?", *end)
	}
	var txs []model.InventoryTransaction
	err := q.Order("created_at ASC").Find(&txs).Error
	return txs, err
}
