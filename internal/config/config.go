package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	JWTSecret           string
	TokenTTLHours       int
	HeatmapRefreshHours int
	HeatmapWorkerCount  int
	HeatmapQueueSize    int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() (Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	cfg := Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:studyvault.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenTTLHours:       envIntOr("TOKEN_TTL_HOURS", 24),
		HeatmapRefreshHours: envIntOr("HEATMAP_REFRESH_HOURS", 6),
		HeatmapWorkerCount:  envIntOr("HEATMAP_WORKER_COUNT", 1),
		HeatmapQueueSize:    envIntOr("HEATMAP_QUEUE_SIZE", 32),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}
	if c.HeatmapRefreshHours <= 0 {
		return fmt.Errorf("HEATMAP_REFRESH_HOURS must be positive")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
