package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transformation converts a purchase's raw quantity into usable/prepared
// quantity, with recorded waste.
//
// RemainingQuantity uses zero as an "unset" sentinel: a transformation
// created with a zero value gets QuantityUsable ("nothing consumed yet").
// A genuinely-zero remaining quantity cannot be supplied at create —
// inherited from the source contract, changing it would change the API.
type Transformation struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name              string          `gorm:"not null"`
	QuantityReceived  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	QuantityUsable    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	WasteQuantity     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit              string          `gorm:"not null"`
	RemainingQuantity decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TransformedAt     time.Time       `gorm:"index;not null"`
	CreatedAt         time.Time

	Purchase *Purchase            `gorm:"foreignKey:PurchaseID"`
	Steps    []TransformationStep `gorm:"foreignKey:TransformationID;constraint:OnDelete:CASCADE"`
}

func (Transformation) TableName() string { return "transformations" }
