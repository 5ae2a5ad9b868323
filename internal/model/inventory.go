package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory tracks the running stock of one item; movements are recorded
// as InventoryTransaction rows rather than mutating the inventory itself.
type Inventory struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string          `gorm:"index;not null"`
	InitialQuantity decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit            string          `gorm:"not null"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Category     *Category              `gorm:"foreignKey:CategoryID"`
	Transactions []InventoryTransaction `gorm:"foreignKey:InventoryID"`
}

func (Inventory) TableName() string { return "inventories" }

// InventoryTransaction is one stock movement: Entry adds, Sale removes.
type InventoryTransaction struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	InventoryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Entry       int       `gorm:"not null;default:0"`
	Sale        int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

func (InventoryTransaction) TableName() string { return "inventory_transactions" }
