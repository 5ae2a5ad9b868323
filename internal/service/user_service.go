package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
)

const bcryptCost = 12

type UserService interface {
	List(ctx context.Context, q dto.ListQuery) (*dto.UserListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func mapUser(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (s *userService) List(ctx context.Context, q dto.ListQuery) (*dto.UserListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	users, count, err := s.repo.List(ctx, spec)
	if err != nil {
		return nil, apierror.Store("get_users", err)
	}
	resp := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users)), Count: count}
	for _, u := range users {
		resp.Users = append(resp.Users, mapUser(u))
	}
	return resp, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_user", err)
	}
	if u == nil {
		return nil, apierror.NotFound("get_user", "user", id.String())
	}
	resp := mapUser(*u)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Store("create_user", err)
	}
	if existing != nil {
		return nil, apierror.Validation("create_user", "a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apierror.Store("create_user", err)
	}

	u := &model.User{
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, apierror.Store("create_user", err)
	}
	resp := mapUser(*u)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if req.Email != nil {
		existing, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, apierror.Store("update_user", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.Validation("update_user", "a user with this email already exists")
		}
	}

	fields := map[string]interface{}{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, apierror.Store("update_user", err)
		}
		fields["password_hash"] = string(hash)
	}

	u, err := s.repo.Updates(ctx, id, fields)
	if err != nil {
		return nil, apierror.Store("update_user", err)
	}
	if u == nil {
		return nil, apierror.NotFound("update_user", "user", id.String())
	}
	resp := mapUser(*u)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Store("delete_user", err)
	}
	if u == nil {
		return apierror.NotFound("delete_user", "user", id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("delete_user", err)
	}
	return nil
}
