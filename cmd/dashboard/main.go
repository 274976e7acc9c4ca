package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/monsoonviz/rainfall-dashboard/internal/adapter/http"
	"github.com/monsoonviz/rainfall-dashboard/internal/config"
	"github.com/monsoonviz/rainfall-dashboard/internal/loader"
	"github.com/monsoonviz/rainfall-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	store := loader.NewStore(cfg.ForecastPath, cfg.BoundaryPath, cfg.ReloadCheck, logger, metrics)
	if err := store.Load(); err != nil {
		// A malformed input file is fatal: serving a partial dataset would
		// silently misrepresent the forecast.
		logger.Error("failed to load input data", "error", err)
		os.Exit(1)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, cfg.ShutdownTimeout, store, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
