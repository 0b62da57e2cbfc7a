package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/config"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/metrics"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/server"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/storage"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		logger.Error("failed to load config file", "error", err)
		os.Exit(1)
	}

	// Initialize storage
	backend, err := storage.Open(ctx, cfg.StorageBackend, cfg.StoragePath)
	if err != nil {
		logger.Error("failed to open storage", "backend", cfg.StorageBackend, "path", cfg.StoragePath, "error", err)
		os.Exit(1)
	}
	logger.Info("storage ready", "backend", cfg.StorageBackend, "path", cfg.StoragePath)

	database := db.New(backend, db.Options{
		Logger:           logger,
		SubmissionCohort: yamlCfg.GetSubmissionCohort(),
		OnTransition:     metrics.RecordTransition,
	})
	defer database.Close()

	metrics.Init(database)

	srv := server.New(cfg, logger)
	srv.RegisterRoutes(database, yamlCfg.GetActiveCohorts())

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server exited")
}
