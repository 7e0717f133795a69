package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/batchtrack/backend/internal/application/production"
	"github.com/batchtrack/backend/internal/interfaces/http/middleware"
)

// ProductionHandler serves plan, batch and prebatch endpoints
type ProductionHandler struct {
	BaseHandler
	service *production.Service
}

func NewProductionHandler(service *production.Service) *ProductionHandler {
	return &ProductionHandler{service: service}
}

// ListPlans handles GET /api/v1/production/plans
func (h *ProductionHandler) ListPlans(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	result, err := h.service.ListPlans(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Offset, result.Limit)
}

// GetPlan handles GET /api/v1/production/plans/:id
func (h *ProductionHandler) GetPlan(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	plan, err := h.service.GetPlan(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}

// PlanHistory handles GET /api/v1/production/plans/:id/history.
// History rows outlive plan deletion, so this never 404s on the plan.
func (h *ProductionHandler) PlanHistory(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	entries, err := h.service.PlanHistory(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// CreatePlan handles POST /api/v1/production/plans
func (h *ProductionHandler) CreatePlan(c *gin.Context) {
	var req production.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.GetJWTUsername(c)
	}
	plan, err := h.service.CreatePlan(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, plan)
}

// UpdatePlan handles PUT /api/v1/production/plans/:id
func (h *ProductionHandler) UpdatePlan(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	var req production.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	if req.UpdatedBy == "" {
		req.UpdatedBy = middleware.GetJWTUsername(c)
	}
	plan, err := h.service.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}

// CancelPlan handles POST /api/v1/production/plans/:id/cancel
func (h *ProductionHandler) CancelPlan(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	var req production.CancelPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	if req.CancelledBy == "" {
		req.CancelledBy = middleware.GetJWTUsername(c)
	}
	plan, err := h.service.CancelPlan(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}

// DeletePlan handles DELETE /api/v1/production/plans/:id
func (h *ProductionHandler) DeletePlan(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	if err := h.service.DeletePlan(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListBatches handles GET /api/v1/production/batches
func (h *ProductionHandler) ListBatches(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	result, err := h.service.ListBatches(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Offset, result.Limit)
}

// GetBatch handles GET /api/v1/production/batches/:id
func (h *ProductionHandler) GetBatch(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	batch, err := h.service.GetBatch(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, batch)
}

// UpdateBatch handles PUT /api/v1/production/batches/:id
func (h *ProductionHandler) UpdateBatch(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	var req production.UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	batch, err := h.service.UpdateBatch(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, batch)
}

// ListPrebatches handles GET /api/v1/production/prebatch
func (h *ProductionHandler) ListPrebatches(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	result, err := h.service.ListPrebatches(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Offset, result.Limit)
}

// CreatePrebatch handles POST /api/v1/production/prebatch
func (h *ProductionHandler) CreatePrebatch(c *gin.Context) {
	var req production.CreatePrebatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	record, err := h.service.CreatePrebatch(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}
