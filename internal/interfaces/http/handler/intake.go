package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/batchtrack/backend/internal/application/intake"
	"github.com/batchtrack/backend/internal/interfaces/http/middleware"
)

// IntakeHandler serves the raw-material intake endpoints
type IntakeHandler struct {
	BaseHandler
	service *intake.Service
}

func NewIntakeHandler(service *intake.Service) *IntakeHandler {
	return &IntakeHandler{service: service}
}

// List handles GET /api/v1/intake
func (h *IntakeHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Offset, result.Limit)
}

// Get handles GET /api/v1/intake/:id
func (h *IntakeHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Create handles POST /api/v1/intake
func (h *IntakeHandler) Create(c *gin.Context) {
	var req intake.CreateIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	if req.IntakeBy == "" {
		req.IntakeBy = middleware.GetJWTUsername(c)
	}
	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Update handles PUT /api/v1/intake/:id
func (h *IntakeHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	var req intake.UpdateIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	if req.EditBy == "" {
		req.EditBy = middleware.GetJWTUsername(c)
	}
	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete handles DELETE /api/v1/intake/:id
func (h *IntakeHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
