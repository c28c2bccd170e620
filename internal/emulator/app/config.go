package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port                 int           // HTTP server port (default: 8080)
	DatabaseFile         string        // Path to the SQLite database file (default: emulator.db)
	APIKey               string        // Optional: API key to accept; generated and logged when empty
	ClientID             string        // Client identifier of the emulated application (default: client_emulator)
	Issuer               string        // Issuer claim of access tokens (default: http://localhost:<port>)
	AccessTokenTTL       time.Duration // Access token lifetime (default: 10m)
	CodeTTL              time.Duration // Authorization code lifetime (default: 10m)
	SeedFile             string        // Optional: YAML file with the connections to seed
	HousekeepingInterval time.Duration // Expired code cleanup interval (default: 1h)
	MasterKey            string        // Optional: key material sealing stored signing keys; ephemeral when empty
	NumSigningKeys       int           // Number of signing keys (default: 2, max: 10)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Port:                 getEnvIntOrDefault("EMULATOR_PORT", 8080),
		DatabaseFile:         getEnvOrDefault("EMULATOR_DATABASE_FILE", "emulator.db"),
		APIKey:               os.Getenv("EMULATOR_API_KEY"),
		ClientID:             getEnvOrDefault("EMULATOR_CLIENT_ID", "client_emulator"),
		Issuer:               os.Getenv("EMULATOR_ISSUER"),
		AccessTokenTTL:       getEnvDurationOrDefault("EMULATOR_ACCESS_TOKEN_TTL", 10*time.Minute),
		CodeTTL:              getEnvDurationOrDefault("EMULATOR_CODE_TTL", 10*time.Minute),
		SeedFile:             os.Getenv("EMULATOR_SEED_FILE"),
		HousekeepingInterval: getEnvDurationOrDefault("EMULATOR_HOUSEKEEPING_INTERVAL", 1*time.Hour),
		MasterKey:            os.Getenv("EMULATOR_MASTER_KEY"),
		NumSigningKeys:       getEnvIntOrDefault("EMULATOR_SIGNING_KEYS", 2),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = fmt.Sprintf("http://localhost:%d", cfg.Port)
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

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
