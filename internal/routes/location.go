package routes

import (
	"github.com/gin-gonic/gin"

	"planttracker/internal/handlers"
)

type LocationRoutes struct {
	handler *handlers.LocationHandler
}

func NewLocationRoutes(handler *handlers.LocationHandler) *LocationRoutes {
	return &LocationRoutes{handler: handler}
}

func (r *LocationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	locations := router.Group("/plants/:id/locations")
	{
		locations.GET("", r.handler.ListLocations)
		locations.POST("", r.handler.CreateLocation)
		locations.GET("/:name", r.handler.GetLocation)
		locations.PUT("/:name", r.handler.UpdateLocation)
		locations.DELETE("/:name", r.handler.DeleteLocation)
	}
}
