package routes

import (
	"github.com/gin-gonic/gin"

	"planttracker/internal/handlers"
)

type PlantRoutes struct {
	handler *handlers.PlantHandler
}

func NewPlantRoutes(handler *handlers.PlantHandler) *PlantRoutes {
	return &PlantRoutes{handler: handler}
}

func (r *PlantRoutes) RegisterRoutes(router *gin.RouterGroup) {
	plants := router.Group("/plants")
	{
		plants.GET("", r.handler.ListPlants)
		plants.POST("", r.handler.CreatePlant)
		plants.GET("/:id", r.handler.GetPlant)
		plants.PUT("/:id", r.handler.UpdatePlant)
		plants.DELETE("/:id", r.handler.DeletePlant)
	}
}
