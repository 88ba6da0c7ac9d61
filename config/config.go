package config

import (
	"errors"
	"os"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret string

	// Server Configuration
	Port string
	Env  string

	// Internal-only routes (make-admin) are registered only when this is
	// set. Never enable it on a public deployment.
	EnableInternalRoutes bool
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		MongoURI:             getEnvOrDefault("MFLIX_DB_URI", ""),
		DBName:               getEnvOrDefault("MFLIX_NS", "sample_mflix"),
		JWTSecret:            getEnvOrDefault("SECRET_KEY", ""),
		Port:                 getEnvOrDefault("PORT", "8000"),
		Env:                  getEnvOrDefault("GO_ENV", "development"),
		EnableInternalRoutes: os.Getenv("ENABLE_INTERNAL_ROUTES") == "true",
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MFLIX_DB_URI must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("SECRET_KEY must be set")
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
