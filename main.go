// main.go
package main

import (
	"context"
	"log"
	"time"

	"clinic-booking/cmd"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/wire"
	"clinic-booking/pkg/database"
	"clinic-booking/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Background sweep marks elapsed bookings as completed
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()

	interval := time.Duration(config.Sweep.IntervalMinutes) * time.Minute
	go app.Service.Sweep.Run(sweepCtx, interval)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
