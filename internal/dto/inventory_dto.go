package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventoryListQuery struct {
	ListQuery
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
}

type CreateInventoryRequest struct {
	Name            string          `json:"name"             validate:"required,min=1,max=200"`
	InitialQuantity decimal.Decimal `json:"initial_quantity" validate:"min=0"`
	Unit            string          `json:"unit"             validate:"required,min=1,max=50"`
	CategoryID      *uuid.UUID      `json:"category_id"`
}

type UpdateInventoryRequest struct {
	Name            *string          `json:"name"             validate:"omitempty,min=1,max=200"`
	InitialQuantity *decimal.Decimal `json:"initial_quantity"`
	Unit            *string          `json:"unit"             validate:"omitempty,min=1,max=50"`
	CategoryID      *uuid.UUID       `json:"category_id"`
}

type CreateInventoryTransactionRequest struct {
	InventoryID uuid.UUID `json:"inventory_id" validate:"required"`
	Entry       int       `json:"entry"        validate:"min=0"`
	Sale        int       `json:"sale"         validate:"min=0"`
}

type InventoryTransactionResponse struct {
	ID          uint      `json:"id"`
	InventoryID uuid.UUID `json:"inventory_id"`
	Entry       int       `json:"entry"`
	Sale        int       `json:"sale"`
	CreatedAt   time.Time `json:"created_at"`
}

type InventoryTransactionListResponse struct {
	Transactions []InventoryTransactionResponse `json:"transactions"`
	Count        int64                          `json:"count"`
}

type InventoryResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	Unit            string          `json:"unit"`
	CategoryID      *uuid.UUID      `json:"category_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type InventoryListResponse struct {
	Inventories []InventoryResponse `json:"inventories"`
	Count       int64               `json:"count"`
}

// InventorySummaryResponse aggregates movements over an optional date range:
// remaining = initial + Σ entry − Σ sale.
type InventorySummaryResponse struct {
	InventoryResponse
	TotalEntry        int             `json:"total_entry"`
	TotalSale         int             `json:"total_sale"`
	TransactionCount  int             `json:"transaction_count"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
}
