package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IngredientListQuery struct {
	ListQuery
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
}

type CreateIngredientRequest struct {
	Name          string           `json:"name"           validate:"required,min=1,max=200"`
	Unit          string           `json:"unit"           validate:"required,oneof=kg g l ml unit tsp tbsp"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	TotalQuantity *decimal.Decimal `json:"total_quantity"`
}

type UpdateIngredientRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit          *string          `json:"unit" validate:"omitempty,oneof=kg g l ml unit tsp tbsp"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	TotalQuantity *decimal.Decimal `json:"total_quantity"`
}

type IngredientResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Unit          string           `json:"unit"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	TotalQuantity *decimal.Decimal `json:"total_quantity,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type IngredientListResponse struct {
	Ingredients []IngredientResponse `json:"ingredients"`
	Count       int64                `json:"count"`
}
