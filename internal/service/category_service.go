package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
)

// CategoryService defines business operations for purchase categories.
type CategoryService interface {
	List(ctx context.Context, q dto.ListQuery) (*dto.CategoryListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *categoryService) List(ctx context.Context, q dto.ListQuery) (*dto.CategoryListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	list, count, err := s.repo.List(ctx, spec)
	if err != nil {
		return nil, apierror.Store("get_categories", err)
	}
	resp := &dto.CategoryListResponse{Categories: make([]dto.CategoryResponse, 0, len(list)), Count: count}
	for _, c := range list {
		resp.Categories = append(resp.Categories, mapCategory(c))
	}
	return resp, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_category", err)
	}
	if c == nil {
		return nil, apierror.NotFound("get_category", "category", id.String())
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, apierror.Store("create_category", err)
	}
	if existing != nil {
		return nil, apierror.Validation("create_category", "a category with that name already exists")
	}

	c := &model.Category{Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apierror.Store("create_category", err)
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	c, err := s.repo.Updates(ctx, id, fields)
	if err != nil {
		return nil, apierror.Store("update_category", err)
	}
	if c == nil {
		return nil, apierror.NotFound("update_category", "category", id.String())
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	// Existence check first: a missing category is a distinct not-found
	// outcome, not a silent no-op. The check and the delete are two calls
	// with no atomicity between them.
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Store("delete_category", err)
	}
	if c == nil {
		return apierror.NotFound("delete_category", "category", id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("delete_category", err)
	}
	return nil
}
