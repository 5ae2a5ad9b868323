package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

func newPurchaseFixture(t *testing.T) (PurchaseService, *stubPurchaseRepo, *stubCategoryRepo, *stubTransformationRepo, uuid.UUID) {
	t.Helper()
	purchaseRepo := newStubPurchaseRepo()
	categoryRepo := newStubCategoryRepo()
	transformationRepo := newStubTransformationRepo()

	cat := &model.Category{Name: "Vegetables"}
	require.NoError(t, categoryRepo.Create(context.Background(), cat))

	svc := NewPurchaseService(purchaseRepo, categoryRepo, transformationRepo)
	return svc, purchaseRepo, categoryRepo, transformationRepo, cat.ID
}

func validPurchaseRequest(categoryID uuid.UUID) dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		ItemName:     "Tomatoes",
		Quantity:     decimal.RequireFromString("2"),
		Unit:         "kg",
		PricePerUnit: decimal.RequireFromString("5.0"),
		TotalPrice:   decimal.RequireFromString("10.0"),
		PurchaseDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CategoryID:   categoryID,
		CreatedBy:    uuid.New(),
	}
}

func TestCreatePurchase_TotalPriceConsistent(t *testing.T) {
	svc, _, _, _, catID := newPurchaseFixture(t)

	resp, err := svc.Create(context.Background(), validPurchaseRequest(catID))
	require.NoError(t, err)
	assert.Equal(t, "Tomatoes", resp.ItemName)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("10.0")))
}

func TestCreatePurchase_TotalPriceMismatchRejected(t *testing.T) {
	svc, repo, _, _, catID := newPurchaseFixture(t)

	req := validPurchaseRequest(catID)
	req.TotalPrice = decimal.RequireFromString("9.99")

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Empty(t, repo.purchases, "nothing should be persisted on a rejected create")
}

func TestCreatePurchase_UnknownCategory(t *testing.T) {
	svc, _, _, _, _ := newPurchaseFixture(t)

	req := validPurchaseRequest(uuid.New())
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestGetPurchase_NotFound(t *testing.T) {
	svc, _, _, _, _ := newPurchaseFixture(t)

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestUpdatePurchase_EmptyBodyIsNoOp(t *testing.T) {
	svc, _, _, _, catID := newPurchaseFixture(t)

	created, err := svc.Create(context.Background(), validPurchaseRequest(catID))
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, dto.UpdatePurchaseRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.ItemName, resp.ItemName)
	assert.True(t, created.Quantity.Equal(resp.Quantity))
}

func TestDeletePurchase_SecondDeleteIsNotFound(t *testing.T) {
	svc, _, _, _, catID := newPurchaseFixture(t)

	created, err := svc.Create(context.Background(), validPurchaseRequest(catID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	err = svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestPurchaseSummary_Rollup(t *testing.T) {
	svc, _, _, transformationRepo, catID := newPurchaseFixture(t)

	req := validPurchaseRequest(catID)
	req.Quantity = decimal.RequireFromString("100")
	req.PricePerUnit = decimal.RequireFromString("1")
	req.TotalPrice = decimal.RequireFromString("100")
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	for _, qty := range []string{"30", "20"} {
		require.NoError(t, transformationRepo.Create(context.Background(), &model.Transformation{
			PurchaseID:       created.ID,
			Name:             "prep",
			QuantityReceived: decimal.RequireFromString(qty),
			QuantityUsable:   decimal.RequireFromString(qty).Sub(decimal.RequireFromString("5")),
			Unit:             "kg",
			TransformedAt:    time.Now(),
		}))
	}

	summary, err := svc.Summary(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, summary.TotalReceivedQuantity.Equal(decimal.RequireFromString("50")))
	assert.True(t, summary.TotalUsedQuantity.Equal(decimal.RequireFromString("40")))
	assert.True(t, summary.RemainingQuantity.Equal(decimal.RequireFromString("50")))
}

func TestPurchaseSummary_NoTransformations(t *testing.T) {
	svc, _, _, _, catID := newPurchaseFixture(t)

	created, err := svc.Create(context.Background(), validPurchaseRequest(catID))
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, summary.TotalReceivedQuantity.IsZero())
	assert.True(t, summary.RemainingQuantity.Equal(created.Quantity))
}

func TestListPurchases_FiltersByCategory(t *testing.T) {
	svc, _, categoryRepo, _, catID := newPurchaseFixture(t)

	other := &model.Category{Name: "Meat"}
	require.NoError(t, categoryRepo.Create(context.Background(), other))

	_, err := svc.Create(context.Background(), validPurchaseRequest(catID))
	require.NoError(t, err)
	reqOther := validPurchaseRequest(other.ID)
	reqOther.ItemName = "Beef"
	_, err = svc.Create(context.Background(), reqOther)
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), dto.PurchaseListQuery{
		ListQuery:  dto.ListQuery{Page: 1, Limit: 20},
		CategoryID: catID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Count)
	require.Len(t, resp.Purchases, 1)
	assert.Equal(t, "Tomatoes", resp.Purchases[0].ItemName)
}

func TestListPurchases_MalformedCategoryID(t *testing.T) {
	svc, _, _, _, _ := newPurchaseFixture(t)

	_, err := svc.List(context.Background(), dto.PurchaseListQuery{
		ListQuery:  dto.ListQuery{Page: 1, Limit: 20},
		CategoryID: "not-a-uuid",
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}
