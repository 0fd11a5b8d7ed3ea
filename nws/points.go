package nws

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// formatPoint renders a coordinate pair the way the API expects it:
// rounded to 4 decimal places, trailing zeros trimmed.
func formatPoint(latitude, longitude float64) string {
	return fmt.Sprintf("%s,%s", formatCoordinate(latitude), formatCoordinate(longitude))
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}

// Points fetches the metadata document for a coordinate. This is the
// primary entry point for forecast information: it links the forecast,
// hourly forecast, grid forecast and nearby observation stations.
func (c *Client) Points(ctx context.Context, latitude, longitude float64) (*PointsDocument, error) {
	var doc PointsDocument
	if _, err := c.getJSON(ctx, fmt.Sprintf("/points/%s", formatPoint(latitude, longitude)), &doc); err != nil {
		return nil, fmt.Errorf("failed to get points document: %w", err)
	}
	return &doc, nil
}

// PointsStations fetches the raw station collection for a coordinate via
// the /points/{point}/stations resource.
func (c *Client) PointsStations(ctx context.Context, latitude, longitude float64) ([]byte, error) {
	raw, err := c.getRaw(ctx, fmt.Sprintf("/points/%s/stations", formatPoint(latitude, longitude)))
	if err != nil {
		return nil, fmt.Errorf("failed to get point stations: %w", err)
	}
	return raw, nil
}

// forecastLink selects the forecast resource link for the requested data
// type from a validated points document.
func forecastLink(props *PointsProperties, dataType DataType) string {
	switch dataType {
	case DataTypeHourly:
		return props.ForecastHourly
	case DataTypeGrid:
		return props.ForecastGridData
	default:
		return props.Forecast
	}
}

// pointsProperties fetches the points document and requires its properties
// object, the precondition for every link lookup.
func (c *Client) pointsProperties(ctx context.Context, latitude, longitude float64) (*PointsProperties, error) {
	var doc PointsDocument
	raw, err := c.getJSON(ctx, fmt.Sprintf("/points/%s", formatPoint(latitude, longitude)), &doc)
	if err != nil {
		return nil, err
	}
	if doc.Properties == nil {
		return nil, &SchemaError{Field: "properties", Raw: raw}
	}
	return doc.Properties, nil
}

// stationURIs resolves the ordered station list for a coordinate. Upstream
// returns stations nearest first; the order is preserved as-is.
func (c *Client) stationURIs(ctx context.Context, latitude, longitude float64) ([]string, error) {
	var doc PointsDocument
	raw, err := c.getJSON(ctx, fmt.Sprintf("/points/%s", formatPoint(latitude, longitude)), &doc)
	if err != nil {
		return nil, err
	}
	if doc.Properties == nil || doc.Properties.ObservationStations == "" {
		return nil, &SchemaError{
			Field:   "observationStations",
			Message: "No Observation Stations found",
			Raw:     raw,
		}
	}

	var stations stationListDocument
	listRaw, err := c.getJSON(ctx, doc.Properties.ObservationStations, &stations)
	if err != nil {
		return nil, err
	}
	if stations.ObservationStations == nil {
		return nil, &SchemaError{Field: "observationStations", Raw: listRaw}
	}
	return stations.ObservationStations, nil
}
