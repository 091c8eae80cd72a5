package services

import (
	"planttracker/internal/models"
	"planttracker/internal/repositories"
)

// Store interfaces consumed by the services. The pgx repositories are
// the production implementations; tests substitute in-memory fakes.

type PlantStore interface {
	Insert(plant *models.Plant) error
	Update(plant *models.Plant) (int64, error)
	Delete(plantID int) (int64, error)
	FindByID(plantID int) (*models.Plant, error)
	FindAll() ([]models.Plant, error)
}

type CareStore interface {
	Upsert(care *models.Care) error
	DeleteByPlantID(plantID int) (int64, error)
	FindByPlantID(plantID int) (*models.Care, error)
	FindAll() ([]models.Care, error)
}

type InformationStore interface {
	Upsert(info *models.Information) error
	DeleteByPlantID(plantID int) (int64, error)
	FindByPlantID(plantID int) (*models.Information, error)
	FindAll() ([]models.Information, error)
}

type LocationStore interface {
	Upsert(location *models.Location) error
	Delete(plantID int, locationName string) (int64, error)
	DeleteByPlantID(plantID int) (int64, error)
	FindByPlantIDAndName(plantID int, locationName string) (*models.Location, error)
	FindByPlantID(plantID int) ([]models.Location, error)
	FindAll() ([]models.Location, error)
}

// Compile-time verification that the repositories satisfy the stores.
var (
	_ PlantStore       = (*repositories.PlantRepository)(nil)
	_ CareStore        = (*repositories.CareRepository)(nil)
	_ InformationStore = (*repositories.InformationRepository)(nil)
	_ LocationStore    = (*repositories.LocationRepository)(nil)
)
