package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/batchtrack/backend/internal/application/catalog"
	"github.com/batchtrack/backend/internal/domain/catalog"
)

// SkuHandler serves SKU masters, recipe steps and the lookup tables
// behind the recipe editor.
type SkuHandler struct {
	BaseHandler
	service *appcatalog.Service
}

func NewSkuHandler(service *appcatalog.Service) *SkuHandler {
	return &SkuHandler{service: service}
}

// List handles GET /api/v1/skus
func (h *SkuHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	result, err := h.service.ListSkus(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Offset, result.Limit)
}

// Get handles GET /api/v1/skus/:sku_id
func (h *SkuHandler) Get(c *gin.Context) {
	skuID := c.Param("sku_id")
	sku, err := h.service.GetSku(c.Request.Context(), skuID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sku)
}

// Create handles POST /api/v1/skus
func (h *SkuHandler) Create(c *gin.Context) {
	var req appcatalog.CreateSkuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	sku, err := h.service.CreateSku(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sku)
}

// Update handles PUT /api/v1/skus/:sku_id
func (h *SkuHandler) Update(c *gin.Context) {
	skuID := c.Param("sku_id")
	var req appcatalog.UpdateSkuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	sku, err := h.service.UpdateSku(c.Request.Context(), skuID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sku)
}

// Delete handles DELETE /api/v1/skus/:sku_id
func (h *SkuHandler) Delete(c *gin.Context) {
	skuID := c.Param("sku_id")
	if err := h.service.DeleteSku(c.Request.Context(), skuID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// actionRequest is the payload for creating or replacing an action code
type actionRequest struct {
	ActionCode        string `json:"action_code" binding:"required"`
	ActionDescription string `json:"action_description" binding:"required"`
	ComponentFilter   string `json:"component_filter"`
}

// ListActions handles GET /api/v1/skus/actions
func (h *SkuHandler) ListActions(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	actions, err := h.service.ListActions(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, actions)
}

// SaveAction handles PUT /api/v1/skus/actions
func (h *SkuHandler) SaveAction(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	action := &catalog.SkuAction{
		ActionCode:        req.ActionCode,
		ActionDescription: req.ActionDescription,
		ComponentFilter:   req.ComponentFilter,
	}
	if err := h.service.SaveAction(c.Request.Context(), action); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, action)
}

// DeleteAction handles DELETE /api/v1/skus/actions/:code
func (h *SkuHandler) DeleteAction(c *gin.Context) {
	code := c.Param("code")
	if err := h.service.DeleteAction(c.Request.Context(), code); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// phaseRequest is the payload for creating or replacing a recipe phase
type phaseRequest struct {
	PhaseID          int    `json:"phase_id" binding:"required"`
	PhaseCode        string `json:"phase_code"`
	PhaseDescription string `json:"phase_description" binding:"required"`
}

// ListPhases handles GET /api/v1/skus/phases
func (h *SkuHandler) ListPhases(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	phases, err := h.service.ListPhases(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, phases)
}

// SavePhase handles PUT /api/v1/skus/phases
func (h *SkuHandler) SavePhase(c *gin.Context) {
	var req phaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	phase := &catalog.SkuPhase{
		PhaseID:          req.PhaseID,
		PhaseCode:        req.PhaseCode,
		PhaseDescription: req.PhaseDescription,
	}
	if err := h.service.SavePhase(c.Request.Context(), phase); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, phase)
}

// DeletePhase handles DELETE /api/v1/skus/phases/:id
func (h *SkuHandler) DeletePhase(c *gin.Context) {
	phaseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid phase id")
		return
	}
	if err := h.service.DeletePhase(c.Request.Context(), phaseID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// destinationRequest is the payload for creating a destination vessel
type destinationRequest struct {
	DestinationCode string `json:"destination_code" binding:"required"`
	Description     string `json:"description"`
}

// ListDestinations handles GET /api/v1/skus/destinations
func (h *SkuHandler) ListDestinations(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	destinations, err := h.service.ListDestinations(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, destinations)
}

// SaveDestination handles PUT /api/v1/skus/destinations
func (h *SkuHandler) SaveDestination(c *gin.Context) {
	var req destinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	dest := &catalog.SkuDestination{
		DestinationCode: req.DestinationCode,
		Description:     req.Description,
	}
	if err := h.service.SaveDestination(c.Request.Context(), dest); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dest)
}

// DeleteDestination handles DELETE /api/v1/skus/destinations/:id
func (h *SkuHandler) DeleteDestination(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "invalid destination id")
		return
	}
	if err := h.service.DeleteDestination(c.Request.Context(), uint(id)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
