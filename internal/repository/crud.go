package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
)

// scope narrows a list query with entity-specific conditions (FK filters,
// preloads) before the shared filter spec is applied.
type scope func(*gorm.DB) *gorm.DB

// crud is the generic data-access base embedded by every entity repository.
// Each repository holds a reference to the shared *gorm.DB handle injected at
// construction; searchColumn receives the case-insensitive substring match
// and timeColumn carries the range bounds and sort direction of a FilterSpec.
type crud[T any] struct {
	db           *gorm.DB
	searchColumn string
	timeColumn   string
}

func newCRUD[T any](db *gorm.DB, searchColumn, timeColumn string) crud[T] {
	return crud[T]{db: db, searchColumn: searchColumn, timeColumn: timeColumn}
}

// List returns one page of records plus the total count of the full filtered
// set. The count is taken before limit/offset so it is independent of
// pagination.
func (r *crud[T]) List(ctx context.Context, spec dto.FilterSpec, scopes ...scope) ([]T, int64, error) {
	var records []T
	var total int64

	q := r.db.WithContext(ctx).Model(new(T))
	for _, s := range scopes {
		q = s(q)
	}
	if spec.Search != "" && r.searchColumn != "" {
		q = q.Where(r.searchColumn+" ILIKE ?", "%"+spec.Search+"%")
	}
	if spec.StartDate != nil {
		q = q.Where(r.timeColumn+" >= ?", *spec.StartDate)
	}
	if spec.EndDate != nil {
		q = q.Where(r.timeColumn+" <= ?", *spec.EndDate)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dir := " ASC"
	if spec.Descending {
		dir = " DESC"
	}
	err := q.Order(r.timeColumn + dir).Limit(spec.Limit).Offset(spec.Offset).Find(&records).Error
	return records, total, err
}

// FindByID returns (nil, nil) when the record does not exist — absence is
// not an error at this layer.
func (r *crud[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *crud[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Updates applies only the fields present in the map. An empty map is a
// no-op that returns the current record unchanged. Returns (nil, nil) when
// the id matches nothing.
func (r *crud[T]) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*T, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

// Delete is idempotent: deleting an absent id is not an error. FK violations
// from the store surface as errors here.
func (r *crud[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}
