package main

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Weather endpoints
	app.router.GET("/forecast", app.handleGetForecast)
	app.router.GET("/observations", app.handleGetObservations)
	app.router.GET("/alerts/active", app.handleGetActiveAlerts)
}
