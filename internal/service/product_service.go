package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
)

type ProductService interface {
	List(ctx context.Context, q dto.ProductListQuery) (*dto.ProductListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo           repository.ProductRepository
	ingredientRepo repository.IngredientRepository
}

func NewProductService(repo repository.ProductRepository, ingredientRepo repository.IngredientRepository) ProductService {
	return &productService{repo: repo, ingredientRepo: ingredientRepo}
}

func mapProduct(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		InitialPortion: p.InitialPortion,
		Unit:           p.Unit,
		CategoryID:     p.CategoryID,
		IngredientID:   p.IngredientID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Ingredient != nil {
		ing := mapIngredient(*p.Ingredient)
		resp.Ingredient = &ing
	}
	return resp
}

func (s *productService) List(ctx context.Context, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalUUID("get_products", "category_id", q.CategoryID)
	if err != nil {
		return nil, err
	}
	ingredientID, err := parseOptionalUUID("get_products", "ingredient_id", q.IngredientID)
	if err != nil {
		return nil, err
	}
	products, count, err := s.repo.List(ctx, spec, categoryID, ingredientID)
	if err != nil {
		return nil, apierror.Store("get_products", err)
	}
	resp := &dto.ProductListResponse{Products: make([]dto.ProductResponse, 0, len(products)), Count: count}
	for _, p := range products {
		resp.Products = append(resp.Products, mapProduct(p))
	}
	return resp, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_product", err)
	}
	if p == nil {
		return nil, apierror.NotFound("get_product", "product", id.String())
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	ing, err := s.ingredientRepo.FindByID(ctx, req.IngredientID)
	if err != nil {
		return nil, apierror.Store("create_product", err)
	}
	if ing == nil {
		return nil, apierror.NotFound("create_product", "ingredient", req.IngredientID.String())
	}

	p := &model.Product{
		Name:           req.Name,
		InitialPortion: req.InitialPortion,
		Unit:           req.Unit,
		CategoryID:     req.CategoryID,
		IngredientID:   req.IngredientID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Store("create_product", err)
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.InitialPortion != nil {
		fields["initial_portion"] = *req.InitialPortion
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}

	p, err := s.repo.Updates(ctx, id, fields)
	if err != nil {
		return nil, apierror.Store("update_product", err)
	}
	if p == nil {
		return nil, apierror.NotFound("update_product", "product", id.String())
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Store("delete_product", err)
	}
	if p == nil {
		return apierror.NotFound("delete_product", "product", id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("delete_product", err)
	}
	return nil
}
