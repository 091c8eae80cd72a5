package models

// Information holds the descriptive details for one plant, owned 1:1 by
// its PlantID like Care.
type Information struct {
	PlantID            int    `json:"plant_id"`
	FromAnotherPlant   bool   `json:"from_another_plant"`
	SoilType           string `json:"soil_type"`
	PotSize            string `json:"pot_size"`
	WaterGlobeRequired bool   `json:"water_globe_required"`
}
