package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/service"
)

type TransformationsHandler struct {
	svc     service.TransformationService
	stepSvc service.TransformationStepService
}

func NewTransformationsHandler(svc service.TransformationService, stepSvc service.TransformationStepService) *TransformationsHandler {
	return &TransformationsHandler{svc: svc, stepSvc: stepSvc}
}

func (h *TransformationsHandler) List(c *gin.Context) {
	var q dto.TransformationListQuery
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

func (h *TransformationsHandler) Get(c *gin.Context) {
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
// @Summary Transformation rollup across its steps
// @Tags transformations
// @Produce json
// @Success 200 {object} dto.TransformationSummaryResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/transformations/{id}/summary [get]
func (h *TransformationsHandler) Summary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSteps GET /v1/transformations/:id/steps
func (h *TransformationsHandler) ListSteps(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q dto.ListQuery
	if !bindListQuery(c, &q) {
		return
	}
	resp, err := h.stepSvc.ListByTransformation(c.Request.Context(), id, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransformationsHandler) Create(c *gin.Context) {
	var req dto.CreateTransformationRequest
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

func (h *TransformationsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTransformationRequest
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

func (h *TransformationsHandler) Delete(c *gin.Context) {
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
