package app

import (
	"os"
	"strconv"
	"time"

	"github.com/S13G/nestwash/internal/auth/notify"
	"github.com/S13G/nestwash/pkg/jwtx"
)

type Config struct {
	Issuer string // Required: issuer claim for session tokens

	TokenSecretFile string        // Optional: path to file containing the HS256 signing secret (default: ./token_secret)
	SessionTTL      time.Duration // Optional: session token lifetime (default: 15m)
	DatabaseFile    string        // Optional: path to SQLite database file (default: ./auth.db)
	PepperFile      string        // Optional: path to file containing pepper for password hashing (default: ./pepper)

	SMTP notify.SMTPConfig // Optional: outbound mail settings; OTP delivery is logged-only when unset

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:          os.Getenv("AUTH_ISSUER"),
		TokenSecretFile: getEnvOrDefault("AUTH_TOKEN_SECRET_FILE", "token_secret"),
		SessionTTL:      getEnvDurationOrDefault("AUTH_SESSION_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile:    getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:      getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		SMTP: notify.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "nestwash-auth" // Default issuer
	}

	return cfg
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

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
