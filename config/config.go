package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string
	// Upstream portal API
	UpstreamAPIURL  string
	UpstreamTimeout time.Duration
	// Redis Configuration (in-flight submission guard)
	RedisURL      string
	RedisPassword string
	InflightTTL   time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment wins
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8081"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		// Strip trailing slash so endpoint joins don't double up
		UpstreamAPIURL:  strings.TrimRight(getEnv("UPSTREAM_API_URL", "http://localhost:8080"), "/"),
		UpstreamTimeout: time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		InflightTTL:     time.Duration(getEnvInt("INFLIGHT_TTL_SECONDS", 30)) * time.Second,
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. In-flight guard will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
