package app

import (
	"os"
	"strconv"
	"time"

	"github.com/tablekeep/tablekeep/pkg/jwtx"
)

type Config struct {
	SecretKey     string        // HS256 signing secret; must be externalized outside dev
	AdminUsername string        // The single accepted login username
	AdminPassword string        // The single accepted login password (hashed at startup)
	AccessTTL     time.Duration // Access token lifetime (default: 30m)

	DatabaseFile        string        // Path to SQLite database file (default: ./tablekeep.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		// The defaults mirror the deployment this service replaced; any real
		// environment overrides all three.
		SecretKey:     getEnvOrDefault("AUTH_SECRET_KEY", "admin123"),
		AdminUsername: getEnvOrDefault("AUTH_USERNAME", "admin"),
		AdminPassword: getEnvOrDefault("AUTH_PASSWORD", "admin123"),
		AccessTTL:     getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "tablekeep.db"),
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
