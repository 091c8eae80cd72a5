package services

import (
	"fmt"

	"planttracker/internal/models"
)

// LocationService coordinates placement records. Unlike care and
// information, a plant may hold several, keyed by the composite
// (plant_id, location_name); an empty name is a valid key and compares
// as the empty string.
type LocationService struct {
	locations LocationStore
}

func NewLocationService(locations LocationStore) *LocationService {
	return &LocationService{locations: locations}
}

func (s *LocationService) Save(location *models.Location) (*models.Location, error) {
	if location.PlantID == 0 {
		return nil, ErrMissingPlantID
	}
	if err := s.locations.Upsert(location); err != nil {
		return nil, fmt.Errorf("failed to save location %q for plant %d: %w",
			location.LocationName, location.PlantID, err)
	}
	return location, nil
}

// Get returns nil, nil when no placement matches the composite key.
func (s *LocationService) Get(plantID int, locationName string) (*models.Location, error) {
	return s.locations.FindByPlantIDAndName(plantID, locationName)
}

// List returns every placement of one plant.
func (s *LocationService) List(plantID int) ([]models.Location, error) {
	return s.locations.FindByPlantID(plantID)
}

func (s *LocationService) Delete(plantID int, locationName string) (int64, error) {
	return s.locations.Delete(plantID, locationName)
}
