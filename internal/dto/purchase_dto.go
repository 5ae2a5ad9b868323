package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Filter ───────────────────────────────────────────────────────────────────

// PurchaseListQuery extends the shared filter with purchase-specific bounds.
type PurchaseListQuery struct {
	ListQuery
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
	CreatedBy  string `form:"created_by"  validate:"omitempty,uuid"`
}

// ── Request DTOs ─────────────────────────────────────────────────────────────

type CreatePurchaseRequest struct {
	ItemName     string          `json:"item_name"      validate:"required,min=1,max=200"`
	Quantity     decimal.Decimal `json:"quantity"       validate:"required,gt=0"`
	Unit         string          `json:"unit"           validate:"required,min=1,max=50"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" validate:"min=0"`
	TotalPrice   decimal.Decimal `json:"total_price"    validate:"min=0"`
	PurchaseDate time.Time       `json:"purchase_date"  validate:"required"`
	CategoryID   uuid.UUID       `json:"category_id"    validate:"required"`
	CreatedBy    uuid.UUID       `json:"created_by"     validate:"required"`
	Notes        *string         `json:"notes"          validate:"omitempty,max=1000"`
}

type UpdatePurchaseRequest struct {
	ItemName     *string          `json:"item_name"      validate:"omitempty,min=1,max=200"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         *string          `json:"unit"           validate:"omitempty,min=1,max=50"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
	TotalPrice   *decimal.Decimal `json:"total_price"`
	PurchaseDate *time.Time       `json:"purchase_date"`
	CategoryID   *uuid.UUID       `json:"category_id"`
	Notes        *string          `json:"notes"          validate:"omitempty,max=1000"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type PurchaseResponse struct {
	ID           uuid.UUID       `json:"id"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	PurchaseDate time.Time       `json:"purchase_date"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CreatedBy    uuid.UUID       `json:"created_by"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	Count     int64              `json:"count"`
}

// PurchaseSummaryResponse is the read-only rollup view: the purchase plus
// quantities aggregated over its transformations. Nothing is persisted.
type PurchaseSummaryResponse struct {
	PurchaseResponse
	TotalReceivedQuantity decimal.Decimal `json:"total_received_quantity"`
	TotalUsedQuantity     decimal.Decimal `json:"total_used_quantity"`
	RemainingQuantity     decimal.Decimal `json:"remaining_quantity"`
}
