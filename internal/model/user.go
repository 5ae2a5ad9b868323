package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles: admin has full access, manager handles purchases and reports,
// cook records transformations and steps.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCook    = "cook"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
