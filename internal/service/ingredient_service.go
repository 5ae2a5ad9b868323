package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
)

type IngredientService interface {
	List(ctx context.Context, q dto.IngredientListQuery) (*dto.IngredientListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.IngredientResponse, error)
	Create(ctx context.Context, req dto.CreateIngredientRequest) (*dto.IngredientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateIngredientRequest) (*dto.IngredientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ingredientService struct {
	repo repository.IngredientRepository
}

func NewIngredientService(repo repository.IngredientRepository) IngredientService {
	return &ingredientService{repo: repo}
}

func mapIngredient(i model.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		ID:            i.ID,
		Name:          i.Name,
		Unit:          i.Unit,
		CategoryID:    i.CategoryID,
		TotalQuantity: i.TotalQuantity,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (s *ingredientService) List(ctx context.Context, q dto.IngredientListQuery) (*dto.IngredientListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalUUID("get_ingredients", "category_id", q.CategoryID)
	if err != nil {
		return nil, err
	}
	ingredients, count, err := s.repo.List(ctx, spec, categoryID)
	if err != nil {
		return nil, apierror.Store("get_ingredients", err)
	}
	resp := &dto.IngredientListResponse{Ingredients: make([]dto.IngredientResponse, 0, len(ingredients)), Count: count}
	for _, i := range ingredients {
		resp.Ingredients = append(resp.Ingredients, mapIngredient(i))
	}
	return resp, nil
}

func (s *ingredientService) Get(ctx context.Context, id uuid.UUID) (*dto.IngredientResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_ingredient", err)
	}
	if i == nil {
		return nil, apierror.NotFound("get_ingredient", "ingredient", id.String())
	}
	resp := mapIngredient(*i)
	return &resp, nil
}

func (s *ingredientService) Create(ctx context.Context, req dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	i := &model.Ingredient{
		Name:          req.Name,
		Unit:          req.Unit,
		CategoryID:    req.CategoryID,
		TotalQuantity: req.TotalQuantity,
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, apierror.Store("create_ingredient", err)
	}
	resp := mapIngredient(*i)
	return &resp, nil
}

func (s *ingredientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.TotalQuantity != nil {
		fields["total_quantity"] = *req.TotalQuantity
	}

	i, err := s.repo.Updates(ctx, id, fields)
	if err != nil {
		return nil, apierror.Store("update_ingredient", err)
	}
	if i == nil {
		return nil, apierror.NotFound("update_ingredient", "ingredient", id.String())
	}
	resp := mapIngredient(*i)
	return &resp, nil
}

func (s *ingredientService) Delete(ctx context.Context, id uuid.UUID) error {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Store("delete_ingredient", err)
	}
	if i == nil {
		return apierror.NotFound("delete_ingredient", "ingredient", id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("delete_ingredient", err)
	}
	return nil
}
