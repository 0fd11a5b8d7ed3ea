package main

import (
	"log"
	"log/slog"

	"weathergov/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env overrides before configuration, if one is present
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment and defaults")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app := NewApp(cfg, logger)

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
