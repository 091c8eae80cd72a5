package models

// Location is a placement record for a plant. A plant may have several,
// distinguished by LocationName; the composite (PlantID, LocationName)
// is the row's key.
type Location struct {
	PlantID      int    `json:"plant_id"`
	LocationName string `json:"location_name"`
	LightLevel   string `json:"light_level"`
}
