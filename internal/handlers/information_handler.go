package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planttracker/internal/models"
	"planttracker/internal/responses"
	"planttracker/internal/services"
)

type InformationHandler struct {
	informationService *services.InformationService
}

func NewInformationHandler(informationService *services.InformationService) *InformationHandler {
	return &InformationHandler{informationService: informationService}
}

// GetInformation handles GET /api/v1/plants/:id/information
func (h *InformationHandler) GetInformation(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	info, err := h.informationService.Get(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve information record")
		return
	}
	if info == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Information record not found")
		return
	}
	responses.Success(c, http.StatusOK, info, "Information record retrieved successfully")
}

// SaveInformation handles POST and PUT /api/v1/plants/:id/information.
func (h *InformationHandler) SaveInformation(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	var info models.Information
	if err := c.ShouldBindJSON(&info); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	info.PlantID = id

	saved, err := h.informationService.Save(&info)
	if err != nil {
		if errors.Is(err, services.ErrMissingPlantID) {
			responses.Fail(c, http.StatusBadRequest, err, "Plant id is required")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save information record")
		return
	}
	responses.Success(c, http.StatusOK, saved, "Information record saved successfully")
}

// DeleteInformation handles DELETE /api/v1/plants/:id/information
func (h *InformationHandler) DeleteInformation(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	if _, err := h.informationService.Delete(id); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to delete information record")
		return
	}
	c.Status(http.StatusNoContent)
}
