package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Harsh-GitHup/go-weather-app/internal/forecast"
	"github.com/Harsh-GitHup/go-weather-app/pkg/log"
)

type AppConfig struct {
	// OpenWeatherMap API key. Required.
	OpenWeatherAPIKey string

	// DefaultUnits is used when a request omits or mangles the units value.
	DefaultUnits forecast.Units

	// GeoLimit bounds the number of geocoding results requested upstream.
	GeoLimit int

	// CacheTTL is how long a search result stays servable from the cache.
	CacheTTL time.Duration

	// CacheSweepInterval controls how often expired entries are evicted.
	CacheSweepInterval time.Duration

	// HTTPTimeout applies to outbound OpenWeatherMap calls.
	HTTPTimeout time.Duration

	// AllowedOrigin is handed to the CORS middleware.
	AllowedOrigin string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file found: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is missing; set it in .env or environment")
	}

	cfg.DefaultUnits = forecast.ParseUnits(getenvDefault("DEFAULT_UNITS", "metric"), forecast.UnitsMetric)
	cfg.GeoLimit = getenvInt("GEO_LIMIT", 1)

	ttl, err := getenvDuration("CACHE_TTL", "5m")
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	sweep, err := getenvDuration("CACHE_SWEEP_INTERVAL", "1m")
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SWEEP_INTERVAL: %w", err)
	}
	cfg.CacheSweepInterval = sweep

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.AllowedOrigin = getenvDefault("ALLOWED_ORIGIN", "http://localhost:8080")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	return time.ParseDuration(getenvDefault(key, def))
}
