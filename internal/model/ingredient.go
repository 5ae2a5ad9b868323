package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Measurement units accepted for ingredients and products.
const (
	UnitKg   = "kg"
	UnitG    = "g"
	UnitL    = "l"
	UnitMl   = "ml"
	UnitUnit = "unit"
	UnitTsp  = "tsp"
	UnitTbsp = "tbsp"
)

// Ingredient is a reference entity for recipe composition.
type Ingredient struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	Unit          string    `gorm:"not null"`
	CategoryID    *uuid.UUID
	TotalQuantity *decimal.Decimal `gorm:"type:decimal(12,3)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Ingredient) TableName() string { return "ingredients" }
