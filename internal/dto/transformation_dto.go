package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Filter ───────────────────────────────────────────────────────────────────

type TransformationListQuery struct {
	ListQuery
	PurchaseID string `form:"purchase_id" validate:"omitempty,uuid"`
}

// ── Request DTOs ─────────────────────────────────────────────────────────────

type CreateTransformationRequest struct {
	PurchaseID       uuid.UUID       `json:"purchase_id"        validate:"required"`
	Name             string          `json:"name"               validate:"required,min=1,max=200"`
	QuantityReceived decimal.Decimal `json:"quantity_received"  validate:"required,gt=0"`
	QuantityUsable   decimal.Decimal `json:"quantity_usable"    validate:"required,gt=0"`
	WasteQuantity    decimal.Decimal `json:"waste_quantity"     validate:"min=0"`
	Unit             string          `json:"unit"               validate:"required,min=1,max=50"`
	// Zero means "nothing consumed yet" and is replaced with quantity_usable.
	RemainingQuantity decimal.Decimal `json:"remaining_quantity" validate:"min=0"`
	TransformedAt     time.Time       `json:"transformed_at"     validate:"required"`
}

type UpdateTransformationRequest struct {
	PurchaseID        *uuid.UUID       `json:"purchase_id"`
	Name              *string          `json:"name"               validate:"omitempty,min=1,max=200"`
	QuantityReceived  *decimal.Decimal `json:"quantity_received"`
	QuantityUsable    *decimal.Decimal `json:"quantity_usable"`
	WasteQuantity     *decimal.Decimal `json:"waste_quantity"`
	Unit              *string          `json:"unit"               validate:"omitempty,min=1,max=50"`
	RemainingQuantity *decimal.Decimal `json:"remaining_quantity"`
	TransformedAt     *time.Time       `json:"transformed_at"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type TransformationResponse struct {
	ID                uuid.UUID       `json:"id"`
	PurchaseID        uuid.UUID       `json:"purchase_id"`
	Name              string          `json:"name"`
	QuantityReceived  decimal.Decimal `json:"quantity_received"`
	QuantityUsable    decimal.Decimal `json:"quantity_usable"`
	WasteQuantity     decimal.Decimal `json:"waste_quantity"`
	Unit              string          `json:"unit"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	TransformedAt     time.Time       `json:"transformed_at"`
	CreatedAt         time.Time       `json:"created_at"`
}

type TransformationListResponse struct {
	Transformations []TransformationResponse `json:"transformations"`
	Count           int64                    `json:"count"`
}

// TransformationSummaryResponse aggregates a transformation with its steps.
// Read-only; stored records are never mutated by the rollup. The outer
// RemainingQuantity (quantity_usable − total_step_quantity) shadows the
// stored field from the embedded response.
type TransformationSummaryResponse struct {
	TransformationResponse
	TotalPortions     int             `json:"total_portions"`
	TotalStepQuantity decimal.Decimal `json:"total_step_quantity"`
	StepCount         int             `json:"step_count"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
}
