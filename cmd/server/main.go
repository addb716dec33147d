package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"grihaplan/server/config"
	"grihaplan/server/internal/api"
	"grihaplan/server/internal/database"
	"grihaplan/server/internal/geocoding"
	"grihaplan/server/internal/inference"
	"grihaplan/server/internal/processor"
	"grihaplan/server/internal/project"
	"grihaplan/server/internal/queue"
	"grihaplan/server/internal/scheduler"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Make sure the database directory exists before sqlite opens it
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", cfg.DatabasePath)

	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	store := project.NewStore(logger)

	inferenceClient := inference.NewClient(
		cfg.Inference.BaseURL,
		time.Duration(cfg.Inference.TimeoutSeconds)*time.Second,
		cfg.Inference.MaxRetries,
		logger,
	)

	// Background probe of the floor-plan service
	healthScheduler := scheduler.NewScheduler(
		inferenceClient,
		time.Duration(cfg.Inference.HealthIntervalSeconds)*time.Second,
		logger,
	)
	healthScheduler.Start()
	defer healthScheduler.Stop()

	// Autosave pipeline: generated layouts are persisted off the
	// request path
	snapshots := queue.NewSnapshotQueue(cfg.Autosave.QueueSize, logger)
	snapshots.Start()
	defer snapshots.Close()

	autosave := processor.NewAutosaveProcessor(db, snapshots, cfg, logger)
	autosave.Start()
	defer autosave.Stop()

	cacheDir := filepath.Join(os.TempDir(), "grihaplan", "geocode_cache")
	geocoder := geocoding.NewGeocoder(logger, cacheDir)

	router := gin.Default()
	api.SetupRoutes(router, store, db, inferenceClient, geocoder, snapshots, logger)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
