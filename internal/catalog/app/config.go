package app

import (
	"os"
	"strconv"
	"time"

	"github.com/scentworks/parfum/pkg/jwtx"
)

type Config struct {
	Issuer      string        // Optional: issuer claim for tokens (default: parfum-catalog)
	TokenSecret string        // Required: HMAC secret for access tokens
	TokenTTL    time.Duration // Optional: access token lifetime (default: 30m)

	StoreDriver  string // Optional: store driver (jsonfile, sqlite) (default: jsonfile)
	UserFile     string // Optional: path to user collection file (default: ./user.json)
	PerfumeFile  string // Optional: path to perfume collection file (default: ./perfume.json)
	DatabaseFile string // Optional: path to SQLite database file (default: ./catalog.db)

	NotesURL   string // Required: base URL of the external notes service
	PepperFile string // Optional: path to password hashing pepper file (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:      getEnvOrDefault("CATALOG_ISSUER", "parfum-catalog"),
		TokenSecret: os.Getenv("CATALOG_TOKEN_SECRET"),
		TokenTTL:    getEnvDurationOrDefault("CATALOG_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		StoreDriver:  getEnvOrDefault("CATALOG_STORE_DRIVER", "jsonfile"),
		UserFile:     getEnvOrDefault("CATALOG_USER_FILE", "user.json"),
		PerfumeFile:  getEnvOrDefault("CATALOG_PERFUME_FILE", "perfume.json"),
		DatabaseFile: getEnvOrDefault("CATALOG_DATABASE_FILE", "catalog.db"),

		NotesURL:   os.Getenv("CATALOG_NOTES_URL"),
		PepperFile: getEnvOrDefault("CATALOG_PEPPER_FILE", "pepper"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
