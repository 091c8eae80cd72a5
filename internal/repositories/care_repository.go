package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"planttracker/internal/models"
)

type CareRepository struct {
	pool *pgxpool.Pool
}

func NewCareRepository(pool *pgxpool.Pool) *CareRepository {
	return &CareRepository{pool: pool}
}

// Upsert writes the care row for a plant in one atomic statement,
// inserting when absent and overwriting every column when present.
func (r *CareRepository) Upsert(care *models.Care) error {
	ctx := context.Background()

	query := `
		INSERT INTO care (plant_id, last_soil_change, last_watering)
		VALUES ($1, $2, $3)
		ON CONFLICT (plant_id) DO UPDATE SET
			last_soil_change = EXCLUDED.last_soil_change,
			last_watering = EXCLUDED.last_watering
	`

	_, err := r.pool.Exec(ctx, query,
		care.PlantID,
		dateArg(care.LastSoilChange),
		dateArg(care.LastWatering),
	)
	return err
}

func (r *CareRepository) DeleteByPlantID(plantID int) (int64, error) {
	ctx := context.Background()

	query := `DELETE FROM care WHERE plant_id = $1`
	tag, err := r.pool.Exec(ctx, query, plantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *CareRepository) FindByPlantID(plantID int) (*models.Care, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, last_soil_change, last_watering
		FROM care WHERE plant_id = $1
	`

	var (
		care           models.Care
		lastSoilChange *time.Time
		lastWatering   *time.Time
	)
	err := r.pool.QueryRow(ctx, query, plantID).Scan(
		&care.PlantID,
		&lastSoilChange,
		&lastWatering,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	care.LastSoilChange = scanDate(lastSoilChange)
	care.LastWatering = scanDate(lastWatering)
	return &care, nil
}

func (r *CareRepository) FindAll() ([]models.Care, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, last_soil_change, last_watering
		FROM care
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cares []models.Care
	for rows.Next() {
		var (
			care           models.Care
			lastSoilChange *time.Time
			lastWatering   *time.Time
		)
		if err := rows.Scan(&care.PlantID, &lastSoilChange, &lastWatering); err != nil {
			return nil, err
		}
		care.LastSoilChange = scanDate(lastSoilChange)
		care.LastWatering = scanDate(lastWatering)
		cares = append(cares, care)
	}

	return cares, rows.Err()
}
