package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "https://siasisten.cs.ui.ac.id", cfg.Portal.URL)
	assert.Equal(t, 30*time.Second, cfg.Portal.Timeout)
	assert.Equal(t, "sqlite", cfg.Cache.Backend)
	assert.Equal(t, 3, cfg.Finance.RecentMonths)
	assert.Equal(t, time.Second, cfg.Finance.BackfillDelay)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":           "9000",
		"CACHE_BACKEND":  "redis",
		"REDIS_ADDR":     "cache:6379",
		"RECENT_MONTHS":  "2",
		"BACKFILL_DELAY": "250ms",
		"CORS_ORIGINS":   "https://a.example,https://b.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 2, cfg.Finance.RecentMonths)
	assert.Equal(t, 250*time.Millisecond, cfg.Finance.BackfillDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"backend": {"CACHE_BACKEND": "mongo"},
		"window":  {"RECENT_MONTHS": "0"},
		"number":  {"REDIS_DB": "satu"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
