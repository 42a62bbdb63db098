package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/adapter/erddap"
	httpadapter "github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/adapter/http"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/assessment"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/config"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/observability"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/temperature"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Live satellite source (feature-flagged via SST_LIVE_ENABLED).
	var live temperature.SSTFetcher
	if cfg.SSTLiveEnabled {
		live = erddap.NewClient(cfg.SSTBaseURL, cfg.SSTTimeout, metrics, logger)
		metrics.LiveSourceEnabled.Set(1)
		logger.Info("live sst source enabled", "base_url", cfg.SSTBaseURL, "timeout", cfg.SSTTimeout)
	} else {
		logger.Info("live sst source disabled, geographic model only")
	}

	resolver := temperature.NewResolver(live, cfg.SSTCacheTTL, cfg.SSTCacheSize, nil, metrics, logger)
	engine := assessment.New(resolver, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, engine, engine, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
