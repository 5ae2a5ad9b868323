package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
)

func TestCreateCategory_DuplicateName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Vegetables"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "vegetables"})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestCategoryCRUD(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	created, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Meat"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meat", got.Name)

	name := "Poultry"
	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Poultry", updated.Name)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestDeleteCategory_Unknown(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}
