package services

import (
	"fmt"

	"go.uber.org/zap"

	"planttracker/internal/logger"
	"planttracker/internal/models"
)

// PlantService coordinates the plant lifecycle: the insert-vs-update
// decision on save, identifier propagation, and the cascade that keeps
// dependent records from outliving their plant.
type PlantService struct {
	plants      PlantStore
	care        CareStore
	information InformationStore
	locations   LocationStore
}

func NewPlantService(
	plants PlantStore,
	care CareStore,
	information InformationStore,
	locations LocationStore,
) *PlantService {
	return &PlantService{
		plants:      plants,
		care:        care,
		information: information,
		locations:   locations,
	}
}

// Save inserts when the plant carries no identifier yet and updates
// otherwise. On insert the store-generated id is written back into the
// returned value, so dependents saved afterwards can resolve it.
func (s *PlantService) Save(plant *models.Plant) (*models.Plant, error) {
	if plant.IsNew() {
		if err := s.plants.Insert(plant); err != nil {
			return nil, fmt.Errorf("failed to insert plant: %w", err)
		}
		logger.Info("plant created", zap.Int("plant_id", plant.PlantID))
		return plant, nil
	}

	affected, err := s.plants.Update(plant)
	if err != nil {
		return nil, fmt.Errorf("failed to update plant %d: %w", plant.PlantID, err)
	}
	if affected == 0 {
		// Not an error: an update against a vanished row reports
		// zero affected rows and the caller decides what that means.
		logger.Warn("plant update matched no rows", zap.Int("plant_id", plant.PlantID))
	}
	return plant, nil
}

// Get returns nil, nil when no plant matches.
func (s *PlantService) Get(plantID int) (*models.Plant, error) {
	return s.plants.FindByID(plantID)
}

func (s *PlantService) GetAll() ([]models.Plant, error) {
	return s.plants.FindAll()
}

// Delete removes the plant and cascades to its dependents. Dependents
// go first so the cascade holds even without foreign keys in the
// schema. The count of deleted plant rows is returned; zero means
// nothing matched and is not an error.
func (s *PlantService) Delete(plantID int) (int64, error) {
	if _, err := s.care.DeleteByPlantID(plantID); err != nil {
		return 0, fmt.Errorf("failed to delete care for plant %d: %w", plantID, err)
	}
	if _, err := s.information.DeleteByPlantID(plantID); err != nil {
		return 0, fmt.Errorf("failed to delete information for plant %d: %w", plantID, err)
	}
	if _, err := s.locations.DeleteByPlantID(plantID); err != nil {
		return 0, fmt.Errorf("failed to delete locations for plant %d: %w", plantID, err)
	}

	affected, err := s.plants.Delete(plantID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete plant %d: %w", plantID, err)
	}
	if affected > 0 {
		logger.Info("plant deleted", zap.Int("plant_id", plantID))
	}
	return affected, nil
}
