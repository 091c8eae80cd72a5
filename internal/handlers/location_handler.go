package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planttracker/internal/models"
	"planttracker/internal/responses"
	"planttracker/internal/services"
)

type LocationHandler struct {
	locationService *services.LocationService
}

func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// ListLocations handles GET /api/v1/plants/:id/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	locations, err := h.locationService.List(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve locations")
		return
	}
	if locations == nil {
		locations = []models.Location{}
	}
	responses.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// GetLocation handles GET /api/v1/plants/:id/locations/:name
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	location, err := h.locationService.Get(id, c.Param("name"))
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve location")
		return
	}
	if location == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Location not found")
		return
	}
	responses.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// CreateLocation handles POST /api/v1/plants/:id/locations; the
// location name comes from the body.
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	var location models.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	location.PlantID = id

	h.save(c, &location)
}

// UpdateLocation handles PUT /api/v1/plants/:id/locations/:name; both
// key parts come from the path.
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	var location models.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	location.PlantID = id
	location.LocationName = c.Param("name")

	h.save(c, &location)
}

func (h *LocationHandler) save(c *gin.Context, location *models.Location) {
	saved, err := h.locationService.Save(location)
	if err != nil {
		if errors.Is(err, services.ErrMissingPlantID) {
			responses.Fail(c, http.StatusBadRequest, err, "Plant id is required")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save location")
		return
	}
	responses.Success(c, http.StatusOK, saved, "Location saved successfully")
}

// DeleteLocation handles DELETE /api/v1/plants/:id/locations/:name
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}

	if _, err := h.locationService.Delete(id, c.Param("name")); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to delete location")
		return
	}
	c.Status(http.StatusNoContent)
}
