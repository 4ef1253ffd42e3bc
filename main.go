// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"usuarios-admin/cmd"
	"usuarios-admin/internal/wire"
	"usuarios-admin/migrations"
	"usuarios-admin/pkg/database"
	"usuarios-admin/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Database.Migrate {
		if err := database.Migrate(migrations.FS, config.Database.URL(), logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Wire all dependencies
	app := wire.Wiring(db, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.HTTP.ShutdownTimeout, logger); err != nil {
		logger.Error("HTTP server stopped", zap.Error(err))
	}

	logger.Info("Application stopped")
}
