package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"planttracker/internal/handlers"
	"planttracker/internal/middlewares"
)

func RegisterRoutes(
	router *gin.Engine,
	plantHandler *handlers.PlantHandler,
	careHandler *handlers.CareHandler,
	informationHandler *handlers.InformationHandler,
	locationHandler *handlers.LocationHandler,
) {
	router.Use(middlewares.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	NewPlantRoutes(plantHandler).RegisterRoutes(api)
	NewCareRoutes(careHandler).RegisterRoutes(api)
	NewInformationRoutes(informationHandler).RegisterRoutes(api)
	NewLocationRoutes(locationHandler).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
