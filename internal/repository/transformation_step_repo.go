package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

type TransformationStepRepository interface {
	List(ctx context.Context, spec dto.FilterSpec, transformationID *uuid.UUID) ([]model.TransformationStep, int64, error)
	ListByTransformation(ctx context.Context, transformationID uuid.UUID, spec dto.FilterSpec) ([]model.TransformationStep, int64, error)
	// ListAllByTransformation returns the full step set for the rollup.
	ListAllByTransformation(ctx context.Context, transformationID uuid.UUID) ([]model.TransformationStep, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TransformationStep, error)
	Create(ctx context.Context, s *model.TransformationStep) error
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.TransformationStep, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transformationStepRepo struct {
	crud[model.TransformationStep]
}

func NewTransformationStepRepository(db *gorm.DB) TransformationStepRepository {
	return &transformationStepRepo{newCRUD[model.TransformationStep](db, "step_name", "created_at")}
}

func (r *transformationStepRepo) List(ctx context.Context, spec dto.FilterSpec, transformationID *uuid.UUID) ([]model.TransformationStep, int64, error) {
	return r.crud.List(ctx, spec, func(q *gorm.DB) *gorm.DB {
		if transformationID != nil {
			q = q.Where("transformation_id = ?", *transformationID)
		}
		return q
	})
}

func (r *transformationStepRepo) ListByTransformation(ctx context.Context, transformationID uuid.UUID, spec dto.FilterSpec) ([]model.TransformationStep, int64, error) {
	return r.crud.List(ctx, spec, func(q *gorm.DB) *gorm.DB {
		return q.Where("transformation_id = ?", transformationID)
	})
}

func (r *transformationStepRepo) ListAllByTransformation(ctx context.Context, transformationID uuid.UUID) ([]model.TransformationStep, error) {
	var steps []model.TransformationStep
	err := r.db.WithContext(ctx).
		Where("transformation_id = ?", transformationID).
		Order("created_at ASC").
		Find(&steps).Error
	return steps, err
}
