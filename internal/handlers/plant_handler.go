package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planttracker/internal/models"
	"planttracker/internal/responses"
	"planttracker/internal/services"
)

type PlantHandler struct {
	plantService *services.PlantService
}

func NewPlantHandler(plantService *services.PlantService) *PlantHandler {
	return &PlantHandler{plantService: plantService}
}

// plantIDParam parses the :id path segment. On failure it writes the
// 400 response itself and reports ok=false.
func plantIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid plant id")
		return 0, false
	}
	return id, true
}

// ListPlants handles GET /api/v1/plants
func (h *PlantHandler) ListPlants(c *gin.Context) {
	plants, err := h.plantService.GetAll()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve plants")
		return
	}
	if plants == nil {
		plants = []models.Plant{}
	}
	responses.Success(c, http.StatusOK, plants, "Plants retrieved successfully")
}

// GetPlant handles GET /api/v1/plants/:id
func (h *PlantHandler) GetPlant(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	plant, err := h.plantService.Get(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve plant")
		return
	}
	if plant == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Plant not found")
		return
	}
	responses.Success(c, http.StatusOK, plant, "Plant retrieved successfully")
}

// CreatePlant handles POST /api/v1/plants
func (h *PlantHandler) CreatePlant(c *gin.Context) {
	var plant models.Plant
	if err := c.ShouldBindJSON(&plant); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	saved, err := h.plantService.Save(&plant)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save plant")
		return
	}
	responses.Success(c, http.StatusOK, saved, "Plant saved successfully")
}

// UpdatePlant handles PUT /api/v1/plants/:id; the path id always wins
// over whatever the body carries.
func (h *PlantHandler) UpdatePlant(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	var plant models.Plant
	if err := c.ShouldBindJSON(&plant); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	plant.PlantID = id

	saved, err := h.plantService.Save(&plant)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save plant")
		return
	}
	responses.Success(c, http.StatusOK, saved, "Plant saved successfully")
}

// DeletePlant handles DELETE /api/v1/plants/:id. Deleting a missing
// plant is a no-op 204, so the operation is idempotent.
func (h *PlantHandler) DeletePlant(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	if _, err := h.plantService.Delete(id); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to delete plant")
		return
	}
	c.Status(http.StatusNoContent)
}
