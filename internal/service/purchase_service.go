package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
)

type PurchaseService interface {
	List(ctx context.Context, q dto.PurchaseListQuery) (*dto.PurchaseListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, id uuid.UUID) (*dto.PurchaseSummaryResponse, error)
}

type purchaseService struct {
	repo               repository.PurchaseRepository
	categoryRepo       repository.CategoryRepository
	transformationRepo repository.TransformationRepository
}

func NewPurchaseService(
	repo repository.PurchaseRepository,
	categoryRepo repository.CategoryRepository,
	transformationRepo repository.TransformationRepository,
) PurchaseService {
	return &purchaseService{
		repo:               repo,
		categoryRepo:       categoryRepo,
		transformationRepo: transformationRepo,
	}
}

func mapPurchase(p model.Purchase) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:           p.ID,
		ItemName:     p.ItemName,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		PricePerUnit: p.PricePerUnit,
		TotalPrice:   p.TotalPrice,
		PurchaseDate: p.PurchaseDate,
		CategoryID:   p.CategoryID,
		CreatedBy:    p.CreatedBy,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (s *purchaseService) List(ctx context.Context, q dto.PurchaseListQuery) (*dto.PurchaseListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalUUID("get_purchases", "category_id", q.CategoryID)
	if err != nil {
		return nil, err
	}
	createdBy, err := parseOptionalUUID("get_purchases", "created_by", q.CreatedBy)
	if err != nil {
		return nil, err
	}

	purchases, count, err := s.repo.List(ctx, spec, categoryID, createdBy)
	if err != nil {
		return nil, apierror.Store("get_purchases", err)
	}
	resp := &dto.PurchaseListResponse{Purchases: make([]dto.PurchaseResponse, 0, len(purchases)), Count: count}
	for _, p := range purchases {
		resp.Purchases = append(resp.Purchases, mapPurchase(p))
	}
	return resp, nil
}

func (s *purchaseService) Get(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_purchase", err)
	}
	if p == nil {
		return nil, apierror.NotFound("get_purchase", "purchase", id.String())
	}
	resp := mapPurchase(*p)
	return &resp, nil
}

func (s *purchaseService) Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	// total_price must equal quantity * price_per_unit exactly. A mismatch is
	// rejected before anything is persisted, never silently corrected.
	if !req.Quantity.Mul(req.PricePerUnit).Equal(req.TotalPrice) {
		return nil, apierror.Validation("create_purchase", "total_price must be equal to quantity * price_per_unit")
	}

	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, apierror.Store("create_purchase", err)
	}
	if category == nil {
		return nil, apierror.NotFound("create_purchase", "category", req.CategoryID.String())
	}

	p := &model.Purchase{
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		TotalPrice:   req.TotalPrice,
		PurchaseDate: req.PurchaseDate,
		CategoryID:   req.CategoryID,
		CreatedBy:    req.CreatedBy,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Store("create_purchase", err)
	}
	resp := mapPurchase(*p)
	return &resp, nil
}

func (s *purchaseService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	fields := map[string]interface{}{}
	if req.ItemName != nil {
		fields["item_name"] = *req.ItemName
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.PricePerUnit != nil {
		fields["price_per_unit"] = *req.PricePerUnit
	}
	if req.TotalPrice != nil {
		fields["total_price"] = *req.TotalPrice
	}
	if req.PurchaseDate != nil {
		fields["purchase_date"] = *req.PurchaseDate
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	p, err := s.repo.Updates(ctx, id, fields)
	if err != nil {
		return nil, apierror.Store("update_purchase", err)
	}
	if p == nil {
		return nil, apierror.NotFound("update_purchase", "purchase", id.String())
	}
	resp := mapPurchase(*p)
	return &resp, nil
}

func (s *purchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Store("delete_purchase", err)
	}
	if p == nil {
		return apierror.NotFound("delete_purchase", "purchase", id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("delete_purchase", err)
	}
	return nil
}

// Summary is the read-only rollup over a purchase's transformations:
// total_received = Σ quantity_received, total_used = Σ quantity_usable,
// remaining = purchase.quantity − total_received. Nothing is mutated.
func (s *purchaseService) Summary(ctx context.Context, id uuid.UUID) (*dto.PurchaseSummaryResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("purchase_summary", err)
	}
	if p == nil {
		return nil, apierror.NotFound("purchase_summary", "purchase", id.String())
	}

	transformations, err := s.transformationRepo.ListByPurchase(ctx, id)
	if err != nil {
		return nil, apierror.Store("purchase_summary", err)
	}

	totalReceived := decimal.Zero
	totalUsed := decimal.Zero
	for _, t := range transformations {
		totalReceived = totalReceived.Add(t.QuantityReceived)
		totalUsed = totalUsed.Add(t.QuantityUsable)
	}

	return &dto.PurchaseSummaryResponse{
		PurchaseResponse:      mapPurchase(*p),
		TotalReceivedQuantity: totalReceived,
		TotalUsedQuantity:     totalUsed,
		RemainingQuantity:     p.Quantity.Sub(totalReceived),
	}, nil
}
