package services

import (
	"fmt"

	"planttracker/internal/models"
)

// InformationService coordinates the descriptive record owned 1:1 by a
// plant; same lifecycle shape as care.
type InformationService struct {
	information InformationStore
}

func NewInformationService(information InformationStore) *InformationService {
	return &InformationService{information: information}
}

func (s *InformationService) Save(info *models.Information) (*models.Information, error) {
	if info.PlantID == 0 {
		return nil, ErrMissingPlantID
	}
	if err := s.information.Upsert(info); err != nil {
		return nil, fmt.Errorf("failed to save information for plant %d: %w", info.PlantID, err)
	}
	return info, nil
}

// Get returns nil, nil when the plant has no information record.
func (s *InformationService) Get(plantID int) (*models.Information, error) {
	return s.information.FindByPlantID(plantID)
}

func (s *InformationService) Delete(plantID int) (int64, error) {
	return s.information.DeleteByPlantID(plantID)
}
