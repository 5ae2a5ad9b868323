package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransformationStep is a discrete portioning event within a transformation
// (e.g. 'Grilled Chicken': 8 portions from 2.5 kg). Leaf entity.
type TransformationStep struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransformationID uuid.UUID       `gorm:"type:uuid;index;not null"`
	StepName         string          `gorm:"not null"`
	Portions         int             `gorm:"not null"`
	Quantity         decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CreatedAt        time.Time

	Transformation *Transformation `gorm:"foreignKey:TransformationID"`
}

func (TransformationStep) TableName() string { return "transformation_steps" }
