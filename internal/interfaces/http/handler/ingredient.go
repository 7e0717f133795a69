package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/batchtrack/backend/internal/application/catalog"
)

// IngredientHandler serves ingredient master and receipt endpoints
type IngredientHandler struct {
	BaseHandler
	service *catalog.Service
}

func NewIngredientHandler(service *catalog.Service) *IngredientHandler {
	return &IngredientHandler{service: service}
}

// List handles GET /api/v1/ingredients
func (h *IngredientHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	result, err := h.service.ListIngredients(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Offset, result.Limit)
}

// Get handles GET /api/v1/ingredients/:id
func (h *IngredientHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	ingredient, err := h.service.GetIngredient(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ingredient)
}

// Search handles GET /api/v1/ingredients/search?code=...
// The code is matched against every known coding scheme.
func (h *IngredientHandler) Search(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		h.BadRequest(c, "code query parameter is required")
		return
	}
	ingredient, err := h.service.SearchIngredient(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ingredient)
}

// Create handles POST /api/v1/ingredients
func (h *IngredientHandler) Create(c *gin.Context) {
	var req catalog.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	ingredient, err := h.service.CreateIngredient(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ingredient)
}

// Update handles PUT /api/v1/ingredients/:id
func (h *IngredientHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	var req catalog.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	ingredient, err := h.service.UpdateIngredient(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ingredient)
}

// Delete handles DELETE /api/v1/ingredients/:id
func (h *IngredientHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	if err := h.service.DeleteIngredient(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListReceipts handles GET /api/v1/receipts
func (h *IngredientHandler) ListReceipts(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	result, err := h.service.ListReceipts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Offset, result.Limit)
}

// CreateReceipt handles POST /api/v1/receipts
func (h *IngredientHandler) CreateReceipt(c *gin.Context) {
	var req catalog.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	receipt, err := h.service.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, receipt)
}

// DeleteReceipt handles DELETE /api/v1/receipts/:id
func (h *IngredientHandler) DeleteReceipt(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	if err := h.service.DeleteReceipt(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
