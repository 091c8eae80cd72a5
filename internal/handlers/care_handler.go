package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planttracker/internal/models"
	"planttracker/internal/responses"
	"planttracker/internal/services"
)

type CareHandler struct {
	careService *services.CareService
}

func NewCareHandler(careService *services.CareService) *CareHandler {
	return &CareHandler{careService: careService}
}

// GetCare handles GET /api/v1/plants/:id/care
func (h *CareHandler) GetCare(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	care, err := h.careService.Get(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve care record")
		return
	}
	if care == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Care record not found")
		return
	}
	responses.Success(c, http.StatusOK, care, "Care record retrieved successfully")
}

// SaveCare handles POST and PUT /api/v1/plants/:id/care. The plant id
// always comes from the path.
func (h *CareHandler) SaveCare(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	var care models.Care
	if err := c.ShouldBindJSON(&care); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	care.PlantID = id

	saved, err := h.careService.Save(&care)
	if err != nil {
		if errors.Is(err, services.ErrMissingPlantID) {
			responses.Fail(c, http.StatusBadRequest, err, "Plant id is required")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save care record")
		return
	}
	responses.Success(c, http.StatusOK, saved, "Care record saved successfully")
}

// DeleteCare handles DELETE /api/v1/plants/:id/care
func (h *CareHandler) DeleteCare(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	if _, err := h.careService.Delete(id); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to delete care record")
		return
	}
	c.Status(http.StatusNoContent)
}
