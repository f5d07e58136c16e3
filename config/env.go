package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"
)

// Config carries every tunable the console reads from the environment.
type Config struct {
	Port           string
	AppEnv         string
	UpstreamAPIURL string
	UpstreamToken  string
	ServiceSecret  string
	RedisURL       string
	SettleDelay    time.Duration
	PageLimit      int
	SessionTTL     time.Duration
}

// Load reads the environment (godotenv has already loaded .env in main).
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8082"),
		AppEnv:         getEnv("APP_ENV", "development"),
		UpstreamAPIURL: getEnv("UPSTREAM_API_URL", "http://localhost:8081/api/v1"),
		UpstreamToken:  os.Getenv("UPSTREAM_API_TOKEN"),
		ServiceSecret:  os.Getenv("SERVICE_JWT_SECRET"),
		RedisURL:       os.Getenv("REDIS_URL"),
		SettleDelay:    time.Duration(getEnvInt("DEBOUNCE_MS", 500)) * time.Millisecond,
		PageLimit:      getEnvInt("LIST_LIMIT", 10),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MIN", 30)) * time.Minute,
	}
	if os.Getenv("UPSTREAM_API_URL") == "" {
		log.Println("⚠️ UPSTREAM_API_URL not set, using local default")
	}
	return cfg
}

// WithTimeout returns a context with a 10s timeout for upstream calls.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
