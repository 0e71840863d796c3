// Package config reads the server settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds every setting of the server and the CLI
type Config struct {
	Port   string
	AppURL string
	Env    string

	LogLevel string

	// Dataset
	DataPath        string
	DatabaseURL     string
	RedisURL        string
	CatalogCacheTTL time.Duration

	// HR contact
	HREmail             string
	HRConsultationRRule string
	HRTimezone          *time.Location

	DefaultLang string

	// Access
	AuthRequired            bool
	FirebaseCredentialsPath string
	FirebaseAPIKey          string
	FirebaseAuthDomain      string
	FirebaseProjectID       string
}

// IsProduction reports whether ENV=production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env files (if present) and then the environment. It reports
// whether a .env file was found so callers can log it.
func Load(envFiles ...string) (Config, bool, error) {
	envLoaded := godotenv.Load(envFiles...) == nil

	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		AppURL:   strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DataPath:    os.Getenv("DATA_PATH"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		HREmail:             getEnv("HR_EMAIL", "hr@lokinstallaties.nl"),
		HRConsultationRRule: os.Getenv("HR_CONSULTATION_RRULE"),
		DefaultLang:         getEnv("DEFAULT_LANG", "nl"),

		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json"),
		FirebaseAPIKey:          os.Getenv("FIREBASE_API_KEY"),
		FirebaseAuthDomain:      os.Getenv("FIREBASE_AUTH_DOMAIN"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
	}

	var err error
	if cfg.CatalogCacheTTL, err = time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "1h")); err != nil {
		return cfg, envLoaded, fmt.Errorf("CATALOG_CACHE_TTL: %w", err)
	}
	if cfg.AuthRequired, err = strconv.ParseBool(getEnv("AUTH_REQUIRED", "false")); err != nil {
		return cfg, envLoaded, fmt.Errorf("AUTH_REQUIRED: %w", err)
	}
	if cfg.HRTimezone, err = time.LoadLocation(getEnv("HR_TIMEZONE", "Europe/Amsterdam")); err != nil {
		return cfg, envLoaded, fmt.Errorf("HR_TIMEZONE: %w", err)
	}

	return cfg, envLoaded, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
