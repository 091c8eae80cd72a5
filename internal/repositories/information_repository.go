package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"planttracker/internal/models"
)

type InformationRepository struct {
	pool *pgxpool.Pool
}

func NewInformationRepository(pool *pgxpool.Pool) *InformationRepository {
	return &InformationRepository{pool: pool}
}

// Upsert writes the information row for a plant in one atomic
// statement, inserting when absent and overwriting when present.
func (r *InformationRepository) Upsert(info *models.Information) error {
	ctx := context.Background()

	query := `
		INSERT INTO information (plant_id, from_another_plant, soil_type, pot_size, water_globe_required)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (plant_id) DO UPDATE SET
			from_another_plant = EXCLUDED.from_another_plant,
			soil_type = EXCLUDED.soil_type,
			pot_size = EXCLUDED.pot_size,
			water_globe_required = EXCLUDED.water_globe_required
	`

	_, err := r.pool.Exec(ctx, query,
		info.PlantID,
		info.FromAnotherPlant,
		info.SoilType,
		info.PotSize,
		info.WaterGlobeRequired,
	)
	return err
}

func (r *InformationRepository) DeleteByPlantID(plantID int) (int64, error) {
	ctx := context.Background()

	query := `DELETE FROM information WHERE plant_id = $1`
	tag, err := r.pool.Exec(ctx, query, plantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *InformationRepository) FindByPlantID(plantID int) (*models.Information, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, from_another_plant, soil_type, pot_size, water_globe_required
		FROM information WHERE plant_id = $1
	`

	var info models.Information
	err := r.pool.QueryRow(ctx, query, plantID).Scan(
		&info.PlantID,
		&info.FromAnotherPlant,
		&info.SoilType,
		&info.PotSize,
		&info.WaterGlobeRequired,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &info, nil
}

func (r *InformationRepository) FindAll() ([]models.Information, error) {
	ctx := context.Background()

	query := `
		SELECT plant_id, from_another_plant, soil_type, pot_size, water_globe_required
		FROM information
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []models.Information
	for rows.Next() {
		var info models.Information
		err := rows.Scan(
			&info.PlantID,
			&info.FromAnotherPlant,
			&info.SoilType,
			&info.PotSize,
			&info.WaterGlobeRequired,
		)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, rows.Err()
}
