package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "RESULT_STREAM", "RATE_LIMIT_RPS", "SEARCH_SEED", "SEARCH_WORKERS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DBDriver)
	assert.Equal(t, "GeoJSONOutput", cfg.ResultStream)
	assert.Equal(t, 2.0, cfg.RateLimitRPS)
	assert.Equal(t, int64(42), cfg.SearchSeed)
	assert.Zero(t, cfg.SearchWorkers)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("SEARCH_SEED", "7")
	t.Setenv("SEARCH_WORKERS", "not-a-number")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, int64(7), cfg.SearchSeed)
	assert.Zero(t, cfg.SearchWorkers)
}
