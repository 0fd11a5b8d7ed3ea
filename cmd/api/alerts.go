package main

import (
	"encoding/json"
	"net/http"

	"weathergov/nws"

	"github.com/gin-gonic/gin"
)

// GetActiveAlertsInput defines the query parameters for the active alerts endpoint
type GetActiveAlertsInput struct {
	Count  bool   `form:"count"`  // Return only the alert counts
	Zone   string `form:"zone"`   // Zone id
	Area   string `form:"area"`   // Area code
	Region string `form:"region"` // Region code
}

func (app *App) handleGetActiveAlerts(c *gin.Context) {
	var input GetActiveAlertsInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := app.client.ActiveAlerts(c.Request.Context(), &nws.ActiveAlertsOptions{
		Count:  input.Count,
		ZoneID: input.Zone,
		Area:   input.Area,
		Region: input.Region,
	})
	if err != nil {
		app.renderError(c, err, "failed to get active alerts")
		return
	}

	// Pass the upstream document through unmodified
	c.JSON(http.StatusOK, json.RawMessage(raw))
}
