package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	APIBaseURL      string
	MediaBaseURL    string
	RedisURL        string
	SessionTTL      time.Duration
	UpstreamTimeout time.Duration
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	apiBase := getEnv("API_BASE_URL", "http://localhost:5000")

	return Config{
		Port:            getEnv("PORT", "8090"),
		Env:             getEnv("ENV", "development"),
		APIBaseURL:      apiBase,
		MediaBaseURL:    getEnv("MEDIA_BASE_URL", apiBase),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		SessionTTL:      time.Hour * time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)),
		UpstreamTimeout: time.Second * time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10)),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
