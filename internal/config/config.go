package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	StoreDriver string // sqlite (default), postgres or memory
	StorePath   string // sqlite database file
	StoreDSN    string // postgres connection string
	Environment string
}

func Load() (*Config, error) {
	// Try the .env file first; absence is fine, plain env vars still apply.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		StoreDriver: getEnv("STORE_DRIVER", DriverSQLite),
		StorePath:   getEnv("STORE_PATH", "tutorbook.db"),
		StoreDSN:    os.Getenv("STORE_DSN"),
		Environment: getEnv("ENV", "development"),
	}

	switch cfg.StoreDriver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if cfg.StoreDSN == "" {
			return nil, fmt.Errorf("STORE_DSN is required for the postgres driver")
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
