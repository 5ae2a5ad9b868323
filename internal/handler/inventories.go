package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/service"
)

type InventoriesHandler struct{ svc service.InventoryService }

func NewInventoriesHandler(svc service.InventoryService) *InventoriesHandler {
	return &InventoriesHandler{svc: svc}
}

func (h *InventoriesHandler) List(c *gin.Context) {
	var q dto.InventoryListQuery
	if !bindListQuery(c, &q) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoriesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary Inventory stock rollup over an optional date range
// @Tags inventories
// @Produce json
// @Param start_date query string false "Lower date bound for movements"
// @Param end_date query string false "Upper date bound for movements"
// @Success 200 {object} dto.InventorySummaryResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/inventories/{id}/summary [get]
func (h *InventoriesHandler) Summary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q dto.ListQuery
	if !bindListQuery(c, &q) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), id, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoriesHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Transactions GET /v1/inventories/:id/transactions
func (h *InventoriesHandler) Transactions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q dto.ListQuery
	if !bindListQuery(c, &q) {
		return
	}
	resp, err := h.svc.Transactions(c.Request.Context(), id, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddTransaction POST /v1/inventories/transactions
func (h *InventoriesHandler) AddTransaction(c *gin.Context) {
	var req dto.CreateInventoryTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventoriesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoriesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
