// Package config loads runtime configuration from a .env file and the
// environment. Flags in cmd/alankar may still override individual values.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// Addr is the listen address.
	Addr string
	// BackendURL is the base URL of the catalog REST backend.
	BackendURL string
	// CachePath is the thumbnail cache database path.
	CachePath string
	// SessionSecret signs session cookies. Empty means auto-generate, which
	// invalidates all sessions on restart.
	SessionSecret string
	// LogPath optionally tees logs to a file.
	LogPath string
}

// Load reads .env (if present) and the environment. BackendURL is the only
// required setting.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, relying on environment", "error", err)
	}

	cfg := &Config{
		Addr:          envOr("ALANKAR_ADDR", ":8080"),
		BackendURL:    os.Getenv("ALANKAR_BACKEND_URL"),
		CachePath:     envOr("ALANKAR_CACHE", "alankar-cache.sqlite3"),
		SessionSecret: os.Getenv("ALANKAR_SESSION_SECRET"),
		LogPath:       os.Getenv("ALANKAR_LOG"),
	}

	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend URL is required (ALANKAR_BACKEND_URL or -backend)")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
