package config

import (
	"errors"
	"os"
	"strconv"
)

// Default configuration values.
const (
	defaultPort     = 8080
	defaultDBPath   = "tracking.db"
	defaultLogLevel = "info"
)

// Config holds the application configuration, read from the environment.
type Config struct {
	Service  ServiceConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Port     int
	APIToken string
}

// DatabaseConfig holds the embedded store configuration.
type DatabaseConfig struct {
	Path string
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string
}

var ErrMissingAPIToken = errors.New("API_TOKEN is not set")

// Load reads configuration from the environment. The shared ingestion token
// has no default: the server refuses to start without one.
func Load() (*Config, error) {
	token := os.Getenv("API_TOKEN")
	if token == "" {
		return nil, ErrMissingAPIToken
	}

	cfg := &Config{
		Service: ServiceConfig{
			Port:     envInt("PORT", defaultPort),
			APIToken: token,
		},
		Database: DatabaseConfig{
			Path: envString("DB_PATH", defaultDBPath),
		},
		Logging: LoggingConfig{
			Level: envString("LOG_LEVEL", defaultLogLevel),
		},
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
