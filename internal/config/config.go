package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// defaultSSTBaseURL is the NOAA Coral Reef Watch degree-heating-week dataset.
// Any ERDDAP griddap dataset exposing sea_surface_temperature works here.
const defaultSSTBaseURL = "https://coastwatch.pfeg.noaa.gov/erddap/griddap/NOAA_DHW.json"

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Live sea-surface temperature source configuration.
	SSTBaseURL     string
	SSTTimeout     time.Duration
	SSTLiveEnabled bool
	SSTCacheTTL    time.Duration
	SSTCacheSize   int
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file is loaded best-effort for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parsePositiveDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	sstTimeout, err := parsePositiveDuration("SST_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	sstCacheTTL, err := parsePositiveDuration("SST_CACHE_TTL", "1h")
	if err != nil {
		return nil, err
	}

	sstCacheSize, err := parseSSTCacheSize()
	if err != nil {
		return nil, err
	}

	liveEnabled := true
	if v := os.Getenv("SST_LIVE_ENABLED"); v != "" {
		liveEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		SSTBaseURL:     envOrDefault("SST_BASE_URL", defaultSSTBaseURL),
		SSTTimeout:     sstTimeout,
		SSTLiveEnabled: liveEnabled,
		SSTCacheTTL:    sstCacheTTL,
		SSTCacheSize:   sstCacheSize,
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseSSTCacheSize() (int, error) {
	s := os.Getenv("SST_CACHE_SIZE")
	if s == "" {
		return 512, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid SST_CACHE_SIZE")
	}
	return n, nil
}
