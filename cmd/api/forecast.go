package main

import (
	"errors"
	"net/http"
	"strings"

	"weathergov/geocode"
	"weathergov/nws"

	"github.com/gin-gonic/gin"
)

// GetForecastInput defines the query parameters for the forecast endpoint
type GetForecastInput struct {
	PostalCode string `form:"postal_code" binding:"required"` // Postal code
	Country    string `form:"country"`                        // 2-letter country code, defaults to US
	Types      string `form:"types"`                          // Comma-separated data types: hourly, grid, or empty for default
}

func (app *App) handleGetForecast(c *gin.Context) {
	var input GetForecastInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Country == "" {
		input.Country = "US"
	}

	dataTypes, err := parseDataTypes(input.Types)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to the client library
	forecasts, result, err := app.client.GetForecastsDetail(c.Request.Context(), input.PostalCode, input.Country, dataTypes...)
	if err != nil {
		app.renderError(c, err, "failed to get forecast")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location":  result,
		"forecasts": forecasts,
	})
}

// parseDataTypes splits the comma-separated types parameter. An empty
// parameter requests the default forecast.
func parseDataTypes(types string) ([]nws.DataType, error) {
	if types == "" {
		return []nws.DataType{nws.DataTypeDefault}, nil
	}

	var dataTypes []nws.DataType
	for _, raw := range strings.Split(types, ",") {
		dt := nws.DataType(strings.TrimSpace(raw))
		if dt == "default" {
			dt = nws.DataTypeDefault
		}
		if err := dt.Validate(); err != nil {
			return nil, err
		}
		dataTypes = append(dataTypes, dt)
	}
	return dataTypes, nil
}

// renderError maps library errors to HTTP statuses: caller mistakes are
// 400, upstream failures and schema drift are 502.
func (app *App) renderError(c *gin.Context, err error, message string) {
	var (
		upstreamErr  *nws.UpstreamError
		schemaErr    *nws.SchemaError
		timestampErr *nws.InvalidTimestampError
		missingErr   *nws.MissingArgumentError
	)

	switch {
	case errors.Is(err, geocode.ErrInvalidPostalCode),
		errors.Is(err, nws.ErrConflictingParameters),
		errors.As(err, &timestampErr),
		errors.As(err, &missingErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.As(err, &schemaErr):
		app.logger.Error("upstream schema drift",
			"error", err,
			"raw", string(schemaErr.Raw),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		app.logger.Error(message, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
