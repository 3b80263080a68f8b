// main.go
package main

import (
	"context"
	"log"
	"time"

	"field-booking/cmd"
	"field-booking/internal/data/repository"
	"field-booking/internal/wire"
	"field-booking/pkg/storage"
	"field-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Open document store
	store, err := storage.NewFileStore(config.Storage.DataPath)
	if err != nil {
		logger.Fatal("Failed to open data store", zap.Error(err))
	}

	logger.Info("Data store opened", zap.String("path", config.Storage.DataPath))

	// Initialize all repositories
	repos := repository.NewRepository(store, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Background sweep: moves overdue pending bookings to expired,
	// mirroring the on-mount + polling behaviour of the web client
	go runExpirySweep(app, config.Booking.SweepSeconds, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func runExpirySweep(app *wire.App, intervalSeconds int, logger *zap.Logger) {
	if intervalSeconds <= 0 {
		intervalSeconds = 30
	}

	sweep := func() {
		expired, err := app.Service.Booking.ExpireOverdue(context.Background())
		if err != nil {
			logger.Error("Expiry sweep failed", zap.Error(err))
			return
		}
		if expired > 0 {
			logger.Info("Expiry sweep completed", zap.Int("expired", expired))
		}
	}

	// Run once at startup, then on the interval
	sweep()

	ticker := time.NewTicker(time.Duration(intervalSeconds) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		sweep()
	}
}
