package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/batchtrack/backend/internal/application/catalog"
)

// PlantHandler serves the plant master endpoints
type PlantHandler struct {
	BaseHandler
	service *catalog.Service
}

func NewPlantHandler(service *catalog.Service) *PlantHandler {
	return &PlantHandler{service: service}
}

// List handles GET /api/v1/plants. Only active plants are returned;
// the planning screens drive plant selection from this list.
func (h *PlantHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	plants, err := h.service.ListPlants(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plants)
}

// Get handles GET /api/v1/plants/:plant_id
func (h *PlantHandler) Get(c *gin.Context) {
	plantID := c.Param("plant_id")
	plant, err := h.service.GetPlant(c.Request.Context(), plantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plant)
}

// Create handles POST /api/v1/plants
func (h *PlantHandler) Create(c *gin.Context) {
	var req catalog.PlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	plant, err := h.service.CreatePlant(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, plant)
}

// Update handles PUT /api/v1/plants/:plant_id
func (h *PlantHandler) Update(c *gin.Context) {
	plantID := c.Param("plant_id")
	var req catalog.PlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	plant, err := h.service.UpdatePlant(c.Request.Context(), plantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plant)
}

// Delete handles DELETE /api/v1/plants/:plant_id
func (h *PlantHandler) Delete(c *gin.Context) {
	plantID := c.Param("plant_id")
	if err := h.service.DeletePlant(c.Request.Context(), plantID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
