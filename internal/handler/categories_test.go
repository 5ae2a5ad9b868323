package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
)

// fakeCategoryService satisfies service.CategoryService without a store.
type fakeCategoryService struct {
	categories map[uuid.UUID]dto.CategoryResponse
}

func newFakeCategoryService() *fakeCategoryService {
	return &fakeCategoryService{categories: make(map[uuid.UUID]dto.CategoryResponse)}
}

func (f *fakeCategoryService) List(_ context.Context, q dto.ListQuery) (*dto.CategoryListResponse, error) {
	if _, err := q.Normalize(); err != nil {
		return nil, err
	}
	resp := &dto.CategoryListResponse{Categories: []dto.CategoryResponse{}}
	for _, c := range f.categories {
		resp.Categories = append(resp.Categories, c)
	}
	resp.Count = int64(len(resp.Categories))
	return resp, nil
}

func (f *fakeCategoryService) Get(_ context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, apierror.NotFound("get_category", "category", id.String())
	}
	return &c, nil
}

func (f *fakeCategoryService) Create(_ context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c := dto.CategoryResponse{ID: uuid.New(), Name: req.Name}
	f.categories[c.ID] = c
	return &c, nil
}

func (f *fakeCategoryService) Update(_ context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, apierror.NotFound("update_category", "category", id.String())
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	f.categories[id] = c
	return &c, nil
}

func (f *fakeCategoryService) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return apierror.NotFound("delete_category", "category", id.String())
	}
	delete(f.categories, id)
	return nil
}

func newCategoryRouter() (*gin.Engine, *fakeCategoryService) {
	gin.SetMode(gin.TestMode)
	svc := newFakeCategoryService()
	h := NewCategoriesHandler(svc)

	r := gin.New()
	r.GET("/v1/categories", h.List)
	r.GET("/v1/categories/:id", h.Get)
	r.POST("/v1/categories", h.Create)
	r.DELETE("/v1/categories/:id", h.Delete)
	return r, svc
}

func TestCategories_CreateAndList(t *testing.T) {
	r, _ := newCategoryRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/categories", strings.NewReader(`{"name":"Vegetables"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.CategoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Count)
	require.Len(t, body.Categories, 1)
	assert.Equal(t, "Vegetables", body.Categories[0].Name)
}

func TestCategories_ValidationError422(t *testing.T) {
	r, _ := newCategoryRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/categories", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCategories_BadUUIDIs400(t *testing.T) {
	r, _ := newCategoryRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/categories/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategories_NotFoundEnvelope(t *testing.T) {
	r, _ := newCategoryRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/categories/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	var env apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "ItemNotFoundError", env.Error)
}

func TestCategories_BadPageRejected(t *testing.T) {
	r, _ := newCategoryRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/categories?page=0", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
