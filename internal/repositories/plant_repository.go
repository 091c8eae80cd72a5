package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"planttracker/internal/models"
)

type PlantRepository struct {
	pool *pgxpool.Pool
}

func NewPlantRepository(pool *pgxpool.Pool) *PlantRepository {
	return &PlantRepository{pool: pool}
}

// Insert stores a new plant and writes the generated identifier back
// into the value via RETURNING.
func (r *PlantRepository) Insert(plant *models.Plant) error {
	ctx := context.Background()

	query := `
		INSERT INTO plant (name, type, height, date_acquired, location_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING plant_id
	`

	return r.pool.QueryRow(ctx, query,
		plant.Name,
		plant.Type,
		plant.Height,
		dateArg(plant.DateAcquired),
		plant.LocationName,
	).Scan(&plant.PlantID)
}

// Update overwrites every column of the matching row. Zero affected
// rows is reported through the count, not as an error.
func (r *PlantRepository) Update(plant *models.Plant) (int64, error) {
	ctx := context.Background()

	query := `
		UPDATE plant SET
			name = $2, type = $3, height = $4, date_acquired = $5, location_name = $6
		WHERE plant_id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		plant.PlantID,
		plant.Name,
		plant.Type,
		plant.Height,
		dateArg(plant.DateAcquired),
		plant.LocationName,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PlantRepository) Delete(plantID int) (int64, error) {
	ctx := context.Background()

	query := `DELETE FROM plant WHERE plant_id = $1`
	tag, err := r.pool.Exec(ctx, query, plantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PlantRepository) FindByID(plantID int) (*models.Plant, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, name, type, height, date_acquired, location_name
		FROM plant WHERE plant_id = $1
	`

	var (
		plant        models.Plant
		dateAcquired *time.Time
	)
	err := r.pool.QueryRow(ctx, query, plantID).Scan(
		&plant.PlantID,
		&plant.Name,
		&plant.Type,
		&plant.Height,
		&dateAcquired,
		&plant.LocationName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	plant.DateAcquired = scanDate(dateAcquired)
	return &plant, nil
}

func (r *PlantRepository) FindAll() ([]models.Plant, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, name, type, height, date_acquired, location_name
		FROM plant
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plants []models.Plant
	for rows.Next() {
		var (
			plant        models.Plant
			dateAcquired *time.Time
		)
		err := rows.Scan(
			&plant.PlantID,
			&plant.Name,
			&plant.Type,
			&plant.Height,
			&dateAcquired,
			&plant.LocationName,
		)
		if err != nil {
			return nil, err
		}
		plant.DateAcquired = scanDate(dateAcquired)
		plants = append(plants, plant)
	}

	return plants, rows.Err()
}
