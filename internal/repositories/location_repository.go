package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"planttracker/internal/models"
)

type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

// Upsert writes one placement row, keyed by the composite
// (plant_id, location_name), inserting or overwriting atomically.
func (r *LocationRepository) Upsert(location *models.Location) error {
	ctx := context.Background()

	query := `
		INSERT INTO location (plant_id, location_name, light_level)
		VALUES ($1, $2, $3)
		ON CONFLICT (plant_id, location_name) DO UPDATE SET
			light_level = EXCLUDED.light_level
	`

	_, err := r.pool.Exec(ctx, query,
		location.PlantID,
		location.LocationName,
		location.LightLevel,
	)
	return err
}

// Delete removes one placement by its composite key.
func (r *LocationRepository) Delete(plantID int, locationName string) (int64, error) {
	ctx := context.Background()

	query := `DELETE FROM location WHERE plant_id = $1 AND location_name = $2`
	tag, err := r.pool.Exec(ctx, query, plantID, locationName)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByPlantID removes every placement of a plant.
func (r *LocationRepository) DeleteByPlantID(plantID int) (int64, error) {
	ctx := context.Background()

	query := `DELETE FROM location WHERE plant_id = $1`
	tag, err := r.pool.Exec(ctx, query, plantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *LocationRepository) FindByPlantIDAndName(plantID int, locationName string) (*models.Location, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, location_name, light_level
		FROM location WHERE plant_id = $1 AND location_name = $2
	`

	var location models.Location
	err := r.pool.QueryRow(ctx, query, plantID, locationName).Scan(
		&location.PlantID,
		&location.LocationName,
		&location.LightLevel,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &location, nil
}

func (r *LocationRepository) FindByPlantID(plantID int) ([]models.Location, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, location_name, light_level
		FROM location WHERE plant_id = $1
	`

	rows, err := r.pool.Query(ctx, query, plantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var location models.Location
		err := rows.Scan(
			&location.PlantID,
			&location.LocationName,
			&location.LightLevel,
		)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, rows.Err()
}

func (r *LocationRepository) FindAll() ([]models.Location, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, location_name, light_level
		FROM location
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var location models.Location
		err := rows.Scan(
			&location.PlantID,
			&location.LocationName,
			&location.LightLevel,
		)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, rows.Err()
}
