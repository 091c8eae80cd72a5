package models

// Plant is the parent record. A zero PlantID means the plant has not
// been persisted yet; the store assigns the identifier on first save.
type Plant struct {
	PlantID      int      `json:"plant_id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Height       *float64 `json:"height"`        // centimeters, nullable
	DateAcquired *Date    `json:"date_acquired"` // nullable
	LocationName string   `json:"location_name"` // denormalized label, independent of Location rows
}

// IsNew reports whether the plant still needs a store-assigned identifier.
func (p *Plant) IsNew() bool {
	return p.PlantID == 0
}
