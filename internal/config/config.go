// Package config reads service settings from the environment, optionally
// preloaded from a .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string

	// DBDriver is "postgres", "sqlite" or empty for the in-memory store.
	DBDriver    string
	DatabaseURL string

	// RedisURL enables stream publication when set.
	RedisURL     string
	ResultStream string

	ProfilesPath string

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel  string
	LogFormat string

	SearchSeed    int64
	SearchWorkers int
}

// LoadDotEnv loads .env into the process environment if present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found (using environment variables)")
	}
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:           Get("PORT", "8080"),
		DBDriver:       strings.ToLower(Get("DB_DRIVER", "")),
		DatabaseURL:    Get("DATABASE_URL", ""),
		RedisURL:       Get("REDIS_URL", ""),
		ResultStream:   Get("RESULT_STREAM", "GeoJSONOutput"),
		ProfilesPath:   Get("PROFILES_PATH", "data/profiles.yaml"),
		RateLimitRPS:   GetFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst: GetInt("RATE_LIMIT_BURST", 4),
		LogLevel:       Get("LOG_LEVEL", "info"),
		LogFormat:      Get("LOG_FORMAT", "text"),
		SearchSeed:     int64(GetInt("SEARCH_SEED", 42)),
		SearchWorkers:  GetInt("SEARCH_WORKERS", 0),
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("invalid integer setting, using default")
		return fallback
	}
	return n
}

func GetFloat(key string, fallback float64) float64 {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("invalid number setting, using default")
		return fallback
	}
	return f
}
