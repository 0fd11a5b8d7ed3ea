package main

import (
	"log/slog"

	"weathergov/internal/config"
	"weathergov/nws"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router *gin.Engine
	logger *slog.Logger
	client *nws.Client
	cfg    *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	client := nws.NewClient(nws.Config{
		BaseURL:    cfg.Client.BaseURL,
		UserAgent:  cfg.Client.UserAgent,
		Accept:     cfg.Client.Accept,
		Timeout:    cfg.Client.Timeout,
		MaxRetries: cfg.Client.MaxRetries,
	}, logger)

	app := &App{
		router: router,
		logger: logger,
		client: client,
		cfg:    cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
