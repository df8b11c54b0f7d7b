package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	_ "siasistenApi/docs"

	"siasistenApi/internal/api"
	"siasistenApi/internal/config"
	"siasistenApi/internal/finance"
	"siasistenApi/internal/logger"
	"siasistenApi/internal/siasisten"
)

type cacheStore interface {
	finance.Store
	io.Closer
}

// @title SIASISTEN Dashboard API
// @version 1.0
// @description API yang membungkus SIASISTEN (login, lowongan, log, pembayaran).
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description sessionid=...; csrftoken=... (atau X-Session-Id + X-CSRFToken)
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.New(logger.Options{})
		boot.Fatal().Err(err).Msg("konfigurasi tidak valid")
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	if log.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStore(ctx, cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Cache.Backend).Msg("gagal membuka cache pembayaran")
	}
	defer store.Close()

	portal := siasisten.NewClient(cfg.Portal.URL, log.With().Str("component", "siasisten").Logger(),
		siasisten.WithTimeout(cfg.Portal.Timeout))
	payments := finance.NewService(portal, store, log.With().Str("component", "finance").Logger(),
		finance.WithRecentMonths(cfg.Finance.RecentMonths),
		finance.WithBackfillDelay(cfg.Finance.BackfillDelay))

	router := api.NewRouter(api.NewHandler(portal, payments, log), log, api.RouterConfig{CORSOrigins: cfg.CORSOrigins})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", srv.Addr).Str("portal", cfg.Portal.URL).Msg("🚀 server berjalan")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server berhenti")
	}
}

func openStore(ctx context.Context, cfg config.CacheConfig) (cacheStore, error) {
	if cfg.Backend == "redis" {
		return finance.ConnectRedis(ctx, finance.RedisConfig{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	}
	return finance.OpenSQLite(cfg.SQLitePath)
}
