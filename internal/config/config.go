package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth. Empty disables authentication on the API routes.
	APIKey string

	// Chunking defaults
	DefaultChunkSize int

	// Optional YAML file overriding the built-in pattern tables.
	PatternsFile string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("SCHOLARDOC_API_KEY"),

		DefaultChunkSize: envInt("DEFAULT_CHUNK_SIZE", 1000),

		PatternsFile: os.Getenv("PATTERNS_FILE"),
	}

	if cfg.DefaultChunkSize <= 0 {
		cfg.DefaultChunkSize = 1000
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
