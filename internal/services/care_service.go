package services

import (
	"fmt"

	"planttracker/internal/models"
)

// CareService coordinates the care record owned 1:1 by a plant.
type CareService struct {
	care CareStore
}

func NewCareService(care CareStore) *CareService {
	return &CareService{care: care}
}

// Save upserts the plant's care row. A zero PlantID fails fast with
// ErrMissingPlantID before any repository call.
func (s *CareService) Save(care *models.Care) (*models.Care, error) {
	if care.PlantID == 0 {
		return nil, ErrMissingPlantID
	}
	if err := s.care.Upsert(care); err != nil {
		return nil, fmt.Errorf("failed to save care for plant %d: %w", care.PlantID, err)
	}
	return care, nil
}

// Get returns nil, nil when the plant has no care record.
func (s *CareService) Get(plantID int) (*models.Care, error) {
	return s.care.FindByPlantID(plantID)
}

func (s *CareService) Delete(plantID int) (int64, error) {
	return s.care.DeleteByPlantID(plantID)
}
