package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransformationStepListQuery struct {
	ListQuery
	TransformationID string `form:"transformation_id" validate:"omitempty,uuid"`
}

// ── Request DTOs ─────────────────────────────────────────────────────────────

type CreateTransformationStepRequest struct {
	TransformationID uuid.UUID       `json:"transformation_id" validate:"required"`
	StepName         string          `json:"step_name"         validate:"required,min=1,max=200"`
	Portions         int             `json:"portions"          validate:"required,gt=0"`
	Quantity         decimal.Decimal `json:"quantity"          validate:"required,gt=0"`
}

type UpdateTransformationStepRequest struct {
	TransformationID *uuid.UUID       `json:"transformation_id"`
	StepName         *string          `json:"step_name" validate:"omitempty,min=1,max=200"`
	Portions         *int             `json:"portions"  validate:"omitempty,gt=0"`
	Quantity         *decimal.Decimal `json:"quantity"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type TransformationStepResponse struct {
	ID               uuid.UUID       `json:"id"`
	TransformationID uuid.UUID       `json:"transformation_id"`
	StepName         string          `json:"step_name"`
	Portions         int             `json:"portions"`
	Quantity         decimal.Decimal `json:"quantity"`
	CreatedAt        time.Time       `json:"created_at"`
}

type TransformationStepListResponse struct {
	Steps []TransformationStepResponse `json:"steps"`
	Count int64                        `json:"count"`
}
