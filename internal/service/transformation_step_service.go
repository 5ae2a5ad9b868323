package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
)

type TransformationStepService interface {
	List(ctx context.Context, q dto.TransformationStepListQuery) (*dto.TransformationStepListResponse, error)
	ListByTransformation(ctx context.Context, transformationID uuid.UUID, q dto.ListQuery) (*dto.TransformationStepListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TransformationStepResponse, error)
	Create(ctx context.Context, req dto.CreateTransformationStepRequest) (*dto.TransformationStepResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTransformationStepRequest) (*dto.TransformationStepResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transformationStepService struct {
	repo               repository.TransformationStepRepository
	transformationRepo repository.TransformationRepository
}

func NewTransformationStepService(
	repo repository.TransformationStepRepository,
	transformationRepo repository.TransformationRepository,
) TransformationStepService {
	return &transformationStepService{repo: repo, transformationRepo: transformationRepo}
}

func mapStep(s model.TransformationStep) dto.TransformationStepResponse {
	return dto.TransformationStepResponse{
		ID:               s.ID,
		TransformationID: s.TransformationID,
		StepName:         s.StepName,
		Portions:         s.Portions,
		Quantity:         s.Quantity,
		CreatedAt:        s.CreatedAt,
	}
}

func (s *transformationStepService) List(ctx context.Context, q dto.TransformationStepListQuery) (*dto.TransformationStepListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	transformationID, err := parseOptionalUUID("get_steps", "transformation_id", q.TransformationID)
	if err != nil {
		return nil, err
	}
	steps, count, err := s.repo.List(ctx, spec, transformationID)
	if err != nil {
		return nil, apierror.Store("get_steps", err)
	}
	resp := &dto.TransformationStepListResponse{Steps: make([]dto.TransformationStepResponse, 0, len(steps)), Count: count}
	for _, step := range steps {
		resp.Steps = append(resp.Steps, mapStep(step))
	}
	return resp, nil
}

func (s *transformationStepService) ListByTransformation(ctx context.Context, transformationID uuid.UUID, q dto.ListQuery) (*dto.TransformationStepListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	steps, count, err := s.repo.ListByTransformation(ctx, transformationID, spec)
	if err != nil {
		return nil, apierror.Store("get_steps_by_transformation", err)
	}
	resp := &dto.TransformationStepListResponse{Steps: make([]dto.TransformationStepResponse, 0, len(steps)), Count: count}
	for _, step := range steps {
		resp.Steps = append(resp.Steps, mapStep(step))
	}
	return resp, nil
}

func (s *transformationStepService) Get(ctx context.Context, id uuid.UUID) (*dto.TransformationStepResponse, error) {
	step, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_step", err)
	}
	if step == nil {
		return nil, apierror.NotFound("get_step", "transformation step", id.String())
	}
	resp := mapStep(*step)
	return &resp, nil
}

func (s *transformationStepService) Create(ctx context.Context, req dto.CreateTransformationStepRequest) (*dto.TransformationStepResponse, error) {
	parent, err := s.transformationRepo.FindByID(ctx, req.TransformationID)
	if err != nil {
		return nil, apierror.Store("create_step", err)
	}
	if parent == nil {
		return nil, apierror.NotFound("create_step", "transformation", req.TransformationID.String())
	}

	step := &model.TransformationStep{
		TransformationID: req.TransformationID,
		StepName:         req.StepName,
		Portions:         req.Portions,
		Quantity:         req.Quantity,
	}
	if err := s.repo.Create(ctx, step); err != nil {
		return nil, apierror.Store("create_step", err)
	}
	resp := mapStep(*step)
	return &resp, nil
}

func (s *transformationStepService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTransformationStepRequest) (*dto.TransformationStepResponse, error) {
	if req.TransformationID != nil {
		parent, err := s.transformationRepo.FindByID(ctx, *req.TransformationID)
		if err != nil {
			return nil, apierror.Store("update_step", err)
		}
		if parent == nil {
			return nil, apierror.NotFound("update_step", "transformation", req.TransformationID.String())
		}
	}

	fields := map[string]interface{}{}
	if req.TransformationID != nil {
		fields["transformation_id"] = *req.TransformationID
	}
	if req.StepName != nil {
		fields["step_name"] = *req.StepName
	}
	if req.Portions != nil {
		fields["portions"] = *req.Portions
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}

	step, err := s.repo.Updates(ctx, id, fields)
	if err != nil {
		return nil, apierror.Store("update_step", err)
	}
	if step == nil {
		return nil, apierror.NotFound("update_step", "transformation step", id.String())
	}
	resp := mapStep(*step)
	return &resp, nil
}

func (s *transformationStepService) Delete(ctx context.Context, id uuid.UUID) error {
	step, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Store("delete_step", err)
	}
	if step == nil {
		return apierror.NotFound("delete_step", "transformation step", id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("delete_step", err)
	}
	return nil
}
