package models

// Care holds the watering/soil history for one plant. At most one row
// exists per plant; PlantID is both identity and parent key.
type Care struct {
	PlantID        int   `json:"plant_id"`
	LastSoilChange *Date `json:"last_soil_change"`
	LastWatering   *Date `json:"last_watering"`
}
