package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// StorageDriver selects the Store backend: "dynamo" or "memory".
	StorageDriver string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTable    string

	JWTSecret string
	JWTExpiry time.Duration

	// DefaultChannels are seeded at startup, e.g. "general,random,staff:locked".
	DefaultChannels []SeedChannel

	AllowedOrigins []string // CORS allowed origins
}

// SeedChannel is one entry of DEFAULT_CHANNELS.
type SeedChannel struct {
	Name     string
	IsLocked bool
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", "dynamo"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTable:    getEnv("DYNAMO_TABLE", "chat"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,

		DefaultChannels: parseChannels(getEnv("DEFAULT_CHANNELS", "general,random,staff:locked")),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// parseChannels parses a comma-separated channel list; a ":locked" suffix
// marks the channel as locked.
func parseChannels(s string) []SeedChannel {
	var out []SeedChannel
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, locked := strings.CutSuffix(part, ":locked")
		out = append(out, SeedChannel{Name: name, IsLocked: locked})
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
