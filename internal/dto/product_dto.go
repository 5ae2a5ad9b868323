package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductListQuery struct {
	ListQuery
	CategoryID   string `form:"category_id"   validate:"omitempty,uuid"`
	IngredientID string `form:"ingredient_id" validate:"omitempty,uuid"`
}

type CreateProductRequest struct {
	Name           string          `json:"name"            validate:"required,min=1,max=200"`
	InitialPortion decimal.Decimal `json:"initial_portion" validate:"required,gt=0"`
	Unit           string          `json:"unit"            validate:"required,oneof=kg g l ml unit tsp tbsp"`
	CategoryID     *uuid.UUID      `json:"category_id"`
	IngredientID   uuid.UUID       `json:"ingredient_id"   validate:"required"`
}

type UpdateProductRequest struct {
	Name           *string          `json:"name"            validate:"omitempty,min=1,max=200"`
	InitialPortion *decimal.Decimal `json:"initial_portion"`
	Unit           *string          `json:"unit"            validate:"omitempty,oneof=kg g l ml unit tsp tbsp"`
	CategoryID     *uuid.UUID       `json:"category_id"`
}

type ProductResponse struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	InitialPortion decimal.Decimal     `json:"initial_portion"`
	Unit           string              `json:"unit"`
	CategoryID     *uuid.UUID          `json:"category_id,omitempty"`
	IngredientID   uuid.UUID           `json:"ingredient_id"`
	Ingredient     *IngredientResponse `json:"ingredient,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int64             `json:"count"`
}
