package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port          string
	BackendURL    string
	SessionSecret string
	GeoRegion     string
	LogLevel      slog.Level
}

// Load reads .env when present and builds the configuration from the
// environment. Only the session secret is mandatory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET not set in environment")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		BackendURL:    getEnv("BACKEND_URL", "http://localhost:8000/api"),
		SessionSecret: secret,
		GeoRegion:     getEnv("GEO_REGION", "in"),
		LogLevel:      parseLevel(getEnv("LOG_LEVEL", "info")),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
