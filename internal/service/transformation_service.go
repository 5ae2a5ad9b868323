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

type TransformationService interface {
	List(ctx context.Context, q dto.TransformationListQuery) (*dto.TransformationListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TransformationResponse, error)
	Create(ctx context.Context, req dto.CreateTransformationRequest) (*dto.TransformationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTransformationRequest) (*dto.TransformationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, id uuid.UUID) (*dto.TransformationSummaryResponse, error)
}

type transformationService struct {
	repo         repository.TransformationRepository
	purchaseRepo repository.PurchaseRepository
	stepRepo     repository.TransformationStepRepository
}

func NewTransformationService(
	repo repository.TransformationRepository,
	purchaseRepo repository.PurchaseRepository,
	stepRepo repository.TransformationStepRepository,
) TransformationService {
	return &transformationService{repo: repo, purchaseRepo: purchaseRepo, stepRepo: stepRepo}
}

func mapTransformation(t model.Transformation) dto.TransformationResponse {
	return dto.TransformationResponse{
		ID:                t.ID,
		PurchaseID:        t.PurchaseID,
		Name:              t.Name,
		QuantityReceived:  t.QuantityReceived,
		QuantityUsable:    t.QuantityUsable,
		WasteQuantity:     t.WasteQuantity,
		Unit:              t.Unit,
		RemainingQuantity: t.RemainingQuantity,
		TransformedAt:     t.TransformedAt,
		CreatedAt:         t.CreatedAt,
	}
}

func (s *transformationService) List(ctx context.Context, q dto.TransformationListQuery) (*dto.TransformationListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	purchaseID, err := parseOptionalUUID("get_transformations", "purchase_id", q.PurchaseID)
	if err != nil {
		return nil, err
	}

	list, count, err := s.repo.List(ctx, spec, purchaseID)
	if err != nil {
		return nil, apierror.Store("get_transformations", err)
	}
	resp := &dto.TransformationListResponse{Transformations: make([]dto.TransformationResponse, 0, len(list)), Count: count}
	for _, t := range list {
		resp.Transformations = append(resp.Transformations, mapTransformation(t))
	}
	return resp, nil
}

func (s *transformationService) Get(ctx context.Context, id uuid.UUID) (*dto.TransformationResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_transformation", err)
	}
	if t == nil {
		return nil, apierror.NotFound("get_transformation", "transformation", id.String())
	}
	resp := mapTransformation(*t)
	return &resp, nil
}

func (s *transformationService) Create(ctx context.Context, req dto.CreateTransformationRequest) (*dto.TransformationResponse, error) {
	// The referenced purchase must exist. The store's FK constraint is the
	// last line of defense, not the first.
	purchase, err := s.purchaseRepo.FindByID(ctx, req.PurchaseID)
	if err != nil {
		return nil, apierror.Store("create_transformation", err)
	}
	if purchase == nil {
		return nil, apierror.NotFound("create_transformation", "purchase", req.PurchaseID.String())
	}

	remaining := req.RemainingQuantity
	if remaining.IsZero() {
		// Zero means "nothing consumed yet": start from the usable quantity.
		remaining = req.QuantityUsable
	}

	t := &model.Transformation{
		PurchaseID:        req.PurchaseID,
		Name:              req.Name,
		QuantityReceived:  req.QuantityReceived,
		QuantityUsable:    req.QuantityUsable,
		WasteQuantity:     req.WasteQuantity,
		Unit:              req.Unit,
		RemainingQuantity: remaining,
		TransformedAt:     req.TransformedAt,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apierror.Store("create_transformation", err)
	}
	resp := mapTransformation(*t)
	return &resp, nil
}

func (s *transformationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTransformationRequest) (*dto.TransformationResponse, error) {
	if req.PurchaseID != nil {
		purchase, err := s.purchaseRepo.FindByID(ctx, *req.PurchaseID)
		if err != nil {
			return nil, apierror.Store("update_transformation", err)
		}
		if purchase == nil {
			return nil, apierror.NotFound("update_transformation", "purchase", req.PurchaseID.String())
		}
	}

	fields := map[string]interface{}{}
	if req.PurchaseID != nil {
		fields["purchase_id"] = *req.PurchaseID
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.QuantityReceived != nil {
		fields["quantity_received"] = *req.QuantityReceived
	}
	if req.QuantityUsable != nil {
		fields["quantity_usable"] = *req.QuantityUsable
	}
	if req.WasteQuantity != nil {
		fields["waste_quantity"] = *req.WasteQuantity
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.RemainingQuantity != nil {
		fields["remaining_quantity"] = *req.RemainingQuantity
	}
	if req.TransformedAt != nil {
		fields["transformed_at"] = *req.TransformedAt
	}

	t, err := s.repo.Updates(ctx, id, fields)
	if err != nil {
		return nil, apierror.Store("update_transformation", err)
	}
	if t == nil {
		return nil, apierror.NotFound("update_transformation", "transformation", id.String())
	}
	resp := mapTransformation(*t)
	return &resp, nil
}

func (s *transformationService) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Store("delete_transformation", err)
	}
	if t == nil {
		return apierror.NotFound("delete_transformation", "transformation", id.String())
	}
	// Cascade removes the transformation's steps at the store level.
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("delete_transformation", err)
	}
	return nil
}

// Summary aggregates a transformation with its steps: total_portions =
// Σ portions, total_step_quantity = Σ quantity, step_count, and
// remaining_quantity = quantity_usable − total_step_quantity. Read-only.
func (s *transformationService) Summary(ctx context.Context, id uuid.UUID) (*dto.TransformationSummaryResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("transformation_summary", err)
	}
	if t == nil {
		return nil, apierror.NotFound("transformation_summary", "transformation", id.String())
	}

	steps, err := s.stepRepo.ListAllByTransformation(ctx, id)
	if err != nil {
		return nil, apierror.Store("transformation_summary", err)
	}

	totalPortions := 0
	totalQuantity := decimal.Zero
	for _, step := range steps {
		totalPortions += step.Portions
		totalQuantity = totalQuantity.Add(step.Quantity)
	}

	return &dto.TransformationSummaryResponse{
		TransformationResponse: mapTransformation(*t),
		TotalPortions:          totalPortions,
		TotalStepQuantity:      totalQuantity,
		StepCount:              len(steps),
		RemainingQuantity:      t.QuantityUsable.Sub(totalQuantity),
	}, nil
}
