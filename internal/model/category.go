package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies purchases, ingredients and inventories
// (e.g. 'Vegetables', 'Meat').
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string { return "categories" }
