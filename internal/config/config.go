package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries everything the process needs at startup. Values come
// from the environment; every key has a documented default except the
// database password, which must be provided explicitly.
type Config struct {
	Port       int
	DBHost     string
	DBPort     int
	DBUsername string
	DBPassword string
	DBDatabase string
}

const (
	defaultPort       = 8080
	defaultDBHost     = "localhost"
	defaultDBPort     = 5432
	defaultDBUsername = "postgres"
	defaultDBDatabase = "planttracker"
)

// Load reads the process environment into a Config. It fails when
// DB_PASSWORD is unset: there is deliberately no fallback credential.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       defaultPort,
		DBHost:     defaultDBHost,
		DBPort:     defaultDBPort,
		DBUsername: defaultDBUsername,
		DBDatabase: defaultDBDatabase,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.DBHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		cfg.DBPort = port
	}
	if v := os.Getenv("DB_USERNAME"); v != "" {
		cfg.DBUsername = v
	}
	if v := os.Getenv("DB_DATABASE"); v != "" {
		cfg.DBDatabase = v
	}

	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD environment variable is required")
	}

	return cfg, nil
}
