// Package config loads server configuration from the environment, with
// optional .env support for development.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var ErrAPIKeyRequired = errors.New("TMDB_API_KEY is required")

type Config struct {
	TMDBAPIKey     string
	Language       string
	DataDir        string
	StorageBackend string
	ListenAddr     string
	SiteURL        string
	LogFile        string
	CacheTTL       time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TMDBAPIKey:     os.Getenv("TMDB_API_KEY"),
		Language:       getenv("LANGUAGE", "en-US"),
		DataDir:        getenv("DATA_DIR", "./data"),
		StorageBackend: strings.ToLower(getenv("STORAGE_BACKEND", BackendFile)),
		ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
		SiteURL:        getenv("SITE_URL", "https://cineflix.dpdns.org"),
		LogFile:        os.Getenv("LOG_FILE"),
		CacheTTL:       10 * time.Minute,
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			cfg.CacheTTL = d
		}
	}

	if cfg.TMDBAPIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.StorageBackend != BackendFile && cfg.StorageBackend != BackendSQLite {
		cfg.StorageBackend = BackendFile
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
