package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"apartment-availability-backend/config"
	"apartment-availability-backend/internal/api"
	"apartment-availability-backend/internal/db"
	"apartment-availability-backend/internal/inventory"
	"apartment-availability-backend/internal/logger"
	"apartment-availability-backend/internal/searchlog"
	"apartment-availability-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load configuration")
	}
	logger.Init(cfg.Log)
	log.Info().Str("path", configPath).Msg("configuration loaded")

	dataset := inventory.Build(
		inventory.DefaultRegistry(),
		inventory.NewGenerator(inventory.NewRandomSource(cfg.Dataset.Seed)),
		cfg.Dataset.Start,
	)
	log.Info().
		Str("start", cfg.Dataset.StartDate).
		Int("days", inventory.DaysInDataset).
		Int("flats", len(dataset.Registry().All())).
		Msg("availability dataset generated")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		appStore store.Store
		searches api.SearchDispatcher
		pool     *searchlog.WorkerPool
	)
	if cfg.Database.Enabled {
		gormDB, err := db.Init(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
		appStore = store.NewGormStore(gormDB)
		if err := appStore.SaveDataset(ctx, dataset); err != nil {
			log.Fatal().Err(err).Msg("failed to persist dataset")
		}

		pool = searchlog.NewWorkerPool(cfg.SearchLog.Workers, cfg.SearchLog.QueueSize, appStore)
		pool.Start(ctx)
		searches = pool
		log.Info().Int("workers", cfg.SearchLog.Workers).Msg("search log enabled")
	} else {
		log.Info().Msg("database disabled; searches will not be logged")
	}

	handler := api.NewHandler(dataset, cfg.Dataset.FlexibilityDays, appStore, searches)
	router := api.NewRouter(&cfg.Server, handler)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	log.Info().Msg("shutdown signal received, stopping services")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server Shutdown")
	}

	cancel()
	if pool != nil {
		pool.Wait()
	}

	log.Info().Msg("server gracefully stopped")
}
