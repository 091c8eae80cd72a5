package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"planttracker/internal/logger"
)

// RunMigrations applies the schema in order. Every statement is
// idempotent so the server can run them on each start.
func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createPlantTable,
		createCareTable,
		createInformationTable,
		createLocationTable,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("migrations completed", zap.Int("count", len(migrations)))
	return nil
}

const createPlantTable = `
CREATE TABLE IF NOT EXISTS plant (
  plant_id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  height NUMERIC,
  date_acquired DATE,
  location_name TEXT NOT NULL DEFAULT ''
);
`

const createCareTable = `
CREATE TABLE IF NOT EXISTS care (
  plant_id INTEGER PRIMARY KEY REFERENCES plant(plant_id) ON DELETE CASCADE,
  last_soil_change DATE,
  last_watering DATE
);
`

const createInformationTable = `
CREATE TABLE IF NOT EXISTS information (
  plant_id INTEGER PRIMARY KEY REFERENCES plant(plant_id) ON DELETE CASCADE,
  from_another_plant BOOLEAN NOT NULL DEFAULT FALSE,
  soil_type TEXT NOT NULL DEFAULT '',
  pot_size TEXT NOT NULL DEFAULT '',
  water_globe_required BOOLEAN NOT NULL DEFAULT FALSE
);
`

const createLocationTable = `
CREATE TABLE IF NOT EXISTS location (
  plant_id INTEGER NOT NULL REFERENCES plant(plant_id) ON DELETE CASCADE,
  location_name TEXT NOT NULL,
  light_level TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (plant_id, location_name)
);
`
