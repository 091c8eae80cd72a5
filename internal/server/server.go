package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"planttracker/internal/config"
	"planttracker/internal/database"
	"planttracker/internal/handlers"
	"planttracker/internal/logger"
	"planttracker/internal/repositories"
	"planttracker/internal/routes"
	"planttracker/internal/services"
)

// NewServer wires config → pool → migrations → repositories → services
// → handlers → routes and returns the HTTP server plus a cleanup func
// that releases the pool.
func NewServer() (*http.Server, func()) {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(pool); err != nil {
		pool.Close()
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Dependency injection
	plantRepo := repositories.NewPlantRepository(pool)
	careRepo := repositories.NewCareRepository(pool)
	informationRepo := repositories.NewInformationRepository(pool)
	locationRepo := repositories.NewLocationRepository(pool)

	plantService := services.NewPlantService(plantRepo, careRepo, informationRepo, locationRepo)
	careService := services.NewCareService(careRepo)
	informationService := services.NewInformationService(informationRepo)
	locationService := services.NewLocationService(locationRepo)

	plantHandler := handlers.NewPlantHandler(plantService)
	careHandler := handlers.NewCareHandler(careService)
	informationHandler := handlers.NewInformationHandler(informationService)
	locationHandler := handlers.NewLocationHandler(locationService)

	router := gin.Default()
	routes.RegisterRoutes(router, plantHandler, careHandler, informationHandler, locationHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, pool.Close
}
