package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string   `env:"PORT,        default=8080"`
	LogLevel    string   `env:"LOG_LEVEL,   default=info"`
	LogPretty   bool     `env:"LOG_PRETTY,  default=false"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5173"`

	Portal  PortalConfig
	Cache   CacheConfig
	Finance FinanceConfig
}

type PortalConfig struct {
	URL     string        `env:"SIASISTEN_URL,  default=https://siasisten.cs.ui.ac.id"`
	Timeout time.Duration `env:"PORTAL_TIMEOUT, default=30s"`
}

type CacheConfig struct {
	Backend    string `env:"CACHE_BACKEND,     default=sqlite"`
	SQLitePath string `env:"CACHE_SQLITE_PATH, default=finance_cache.db"`
	RedisAddr  string `env:"REDIS_ADDR,        default=localhost:6379"`
	RedisDB    int    `env:"REDIS_DB,          default=0"`
}

type FinanceConfig struct {
	RecentMonths  int           `env:"RECENT_MONTHS,  default=3"`
	BackfillDelay time.Duration `env:"BACKFILL_DELAY, default=1s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "sqlite", "redis":
	default:
		return fmt.Errorf("config: CACHE_BACKEND %q tidak dikenal (sqlite|redis)", c.Cache.Backend)
	}
	if c.Finance.RecentMonths < 1 {
		return fmt.Errorf("config: RECENT_MONTHS harus >= 1, didapat %d", c.Finance.RecentMonths)
	}
	if c.Finance.BackfillDelay < 0 {
		return fmt.Errorf("config: BACKFILL_DELAY tidak boleh negatif")
	}
	if c.Portal.URL == "" {
		return fmt.Errorf("config: SIASISTEN_URL kosong")
	}
	return nil
}
