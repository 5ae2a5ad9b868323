package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Role     string `json:"role"      validate:"required,oneof=admin manager cook"`
	Password string `json:"password"  validate:"required,min=8"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role"      validate:"omitempty,oneof=admin manager cook"`
	Password *string `json:"password"  validate:"omitempty,min=8"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int64          `json:"count"`
}
