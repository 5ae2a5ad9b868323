package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase records one buying event of a raw item. TotalPrice must equal
// Quantity * PricePerUnit — enforced at the service layer before insert,
// never silently corrected.
type Purchase struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemName     string          `gorm:"index;not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit         string          `gorm:"not null"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PurchaseDate time.Time       `gorm:"type:date;not null"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category        *Category        `gorm:"foreignKey:CategoryID"`
	Transformations []Transformation `gorm:"foreignKey:PurchaseID"`
}

func (Purchase) TableName() string { return "purchases" }
