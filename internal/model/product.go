package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a prepared item derived from an ingredient.
type Product struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"index;not null"`
	InitialPortion decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit           string          `gorm:"not null"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid"`
	IngredientID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

func (Product) TableName() string { return "products" }
