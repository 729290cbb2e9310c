package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Session SessionConfig
	Stats   StatsConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig controls the guest cart session cookie.
type SessionConfig struct {
	CookieName string
	MaxAge     time.Duration
}

// StatsConfig controls the periodic store stats report.
type StatsConfig struct {
	Enabled bool
	Spec    string // cron spec, e.g. "@every 10m"
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "shopflow_session"),
			MaxAge:     parseDuration(getEnv("SESSION_MAX_AGE", "720h"), 720*time.Hour),
		},
		Stats: StatsConfig{
			Enabled: getEnv("STATS_ENABLED", "true") == "true",
			Spec:    getEnv("STATS_CRON_SPEC", "@every 10m"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
