package main

import (
	"net/http"

	"weathergov/nws"

	"github.com/gin-gonic/gin"
)

// GetObservationsInput defines the query parameters for the observations endpoint
type GetObservationsInput struct {
	PostalCode string `form:"postal_code" binding:"required"` // Postal code
	Country    string `form:"country"`                        // 2-letter country code, defaults to US
	Start      string `form:"start"`                          // Observation window start
	End        string `form:"end"`                            // Observation window end
	Stations   int    `form:"stations"`                       // Number of nearest stations, -1 for all
}

func (app *App) handleGetObservations(c *gin.Context) {
	var input GetObservationsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Country == "" {
		input.Country = "US"
	}

	stream, err := app.client.GetObservations(c.Request.Context(), input.PostalCode, input.Country, &nws.ObservationStreamOptions{
		Start:       input.Start,
		End:         input.End,
		NumStations: input.Stations,
	})
	if err != nil {
		app.renderError(c, err, "failed to get observations")
		return
	}

	// Drain the stream; the station bound keeps this finite
	observations := []nws.Observation{}
	for stream.Next() {
		observations = append(observations, stream.Observation())
	}
	if err := stream.Err(); err != nil {
		app.renderError(c, err, "failed to get observations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"observations": observations,
	})
}
