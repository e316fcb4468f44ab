package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// AppEnv selects the logging handler ("dev" or "prod").
	AppEnv string

	// Upstream endpoints.
	BrightSkyBaseURL string
	NominatimBaseURL string

	// Outbound request timeouts.
	GeocodingTimeout time.Duration
	WeatherTimeout   time.Duration

	// Timezone used for Bright Sky date parameters and `tz` query values.
	WeatherTimezone string

	// Port for the optional HTTP API. Empty disables the HTTP listener.
	HTTPPort string

	LogLevel slog.Level
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found or error loading it", "err", err)
	}

	cfg := &AppConfig{}

	cfg.AppEnv = getenvDefault("APP_ENV", "dev")
	if cfg.AppEnv != "dev" && cfg.AppEnv != "prod" {
		return nil, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", cfg.AppEnv)
	}

	cfg.BrightSkyBaseURL = strings.TrimRight(getenvDefault("BRIGHTSKY_BASE_URL", "https://api.brightsky.dev"), "/")
	cfg.NominatimBaseURL = strings.TrimRight(getenvDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"), "/")

	var err error
	cfg.GeocodingTimeout, err = getenvDuration("GEOCODING_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.WeatherTimeout, err = getenvDuration("WEATHER_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.WeatherTimezone = getenvDefault("WEATHER_TIMEZONE", "Europe/Berlin")
	if _, err := time.LoadLocation(cfg.WeatherTimezone); err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEZONE: %w", err)
	}

	cfg.HTTPPort = getenvDefault("HTTP_PORT", "8080")
	if cfg.HTTPPort != "" {
		if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
			return nil, fmt.Errorf("invalid HTTP_PORT %q: %w", cfg.HTTPPort, err)
		}
	}

	cfg.LogLevel, err = parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
