package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	ForecastPath    string
	BoundaryPath    string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// ReloadCheck enables re-statting the input files on snapshot access and
	// reloading when their modification time changes. Purely a convenience
	// for long-running deployments; loads are idempotent either way.
	ReloadCheck bool
}

// Load reads configuration from environment variables (optionally .env),
// applying defaults where unset.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignore missing file

	shutdownTimeout := 10 * time.Second
	if s := os.Getenv("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
		}
		shutdownTimeout = d
	}

	reloadCheck := true
	if v := os.Getenv("RELOAD_CHECK"); v != "" {
		reloadCheck = v == "true"
	}

	cfg := &Config{
		ForecastPath:    envOrDefault("FORECAST_PATH", "data/forecast_results.csv"),
		BoundaryPath:    envOrDefault("BOUNDARY_PATH", "data/india_states.geojson"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		ReloadCheck:     reloadCheck,
	}

	if cfg.ForecastPath == "" {
		return nil, errors.New("FORECAST_PATH is required")
	}
	if cfg.BoundaryPath == "" {
		return nil, errors.New("BOUNDARY_PATH is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
