// main.go
package main

import (
	"log"

	"movie-ticket-booking/cmd"
	"movie-ticket-booking/internal/data/repository"
	"movie-ticket-booking/internal/wire"
	"movie-ticket-booking/pkg/utils"

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
		zap.String("version", config.App.Version),
		zap.String("transport", config.App.Transport),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize the in-memory booking ledger
	repos := repository.NewRepository(logger)

	// Wire all dependencies onto the MCP server
	app := wire.Wiring(repos, config, logger)

	if err := cmd.Serve(app.MCP, config, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
