package nws

import (
	"context"
	"encoding/json"
	"fmt"

	"weathergov/geocode"
)

// DataType selects which forecast resource a request targets.
type DataType string

const (
	// DataTypeDefault selects the standard 12-hour period forecast.
	DataTypeDefault DataType = ""
	DataTypeHourly  DataType = "hourly"
	DataTypeGrid    DataType = "grid"
)

// Validate rejects unknown data types. Validation happens before any
// network call.
func (d DataType) Validate() error {
	switch d {
	case DataTypeDefault, DataTypeHourly, DataTypeGrid:
		return nil
	default:
		return fmt.Errorf("invalid data type %q", string(d))
	}
}

func validateDataTypes(dataTypes []DataType) error {
	for _, dt := range dataTypes {
		if err := dt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Forecast is one normalized forecast result. For DataTypeGrid the grid
// document's properties object is carried in Properties; for the other
// types the period list is carried in Periods.
type Forecast struct {
	DataType   DataType
	Properties map[string]any
	Periods    []map[string]any
}

// PointsForecast fetches the raw forecast documents for a coordinate, one
// per requested data type, in request order. An empty type list means one
// default forecast. The documents are returned unmodified.
func (c *Client) PointsForecast(ctx context.Context, latitude, longitude float64, dataTypes ...DataType) ([]json.RawMessage, error) {
	if len(dataTypes) == 0 {
		dataTypes = []DataType{DataTypeDefault}
	}
	if err := validateDataTypes(dataTypes); err != nil {
		return nil, err
	}

	props, err := c.pointsProperties(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	documents := make([]json.RawMessage, 0, len(dataTypes))
	for _, dt := range dataTypes {
		raw, err := c.getRaw(ctx, forecastLink(props, dt))
		if err != nil {
			return nil, fmt.Errorf("failed to get %s forecast: %w", forecastLabel(dt), err)
		}
		documents = append(documents, raw)
	}
	return documents, nil
}

// GetForecasts resolves a postal code to coordinates and returns one
// validated forecast per requested data type. No type means grid, matching
// the historical default. Result order matches the requested type order.
func (c *Client) GetForecasts(ctx context.Context, postalCode, country string, dataTypes ...DataType) ([]Forecast, error) {
	forecasts, _, err := c.getForecasts(ctx, postalCode, country, dataTypes, false)
	return forecasts, err
}

// GetForecastsDetail is GetForecasts plus the geocoding lookup result for
// callers that want the resolved place metadata.
func (c *Client) GetForecastsDetail(ctx context.Context, postalCode, country string, dataTypes ...DataType) ([]Forecast, *geocode.Result, error) {
	return c.getForecasts(ctx, postalCode, country, dataTypes, true)
}

func (c *Client) getForecasts(ctx context.Context, postalCode, country string, dataTypes []DataType, detail bool) ([]Forecast, *geocode.Result, error) {
	if len(dataTypes) == 0 {
		dataTypes = []DataType{DataTypeGrid}
	}
	if err := validateDataTypes(dataTypes); err != nil {
		return nil, nil, err
	}

	var (
		coords geocode.Coordinates
		result *geocode.Result
		err    error
	)
	if detail {
		coords, result, err = c.geo.ResolveDetail(ctx, postalCode, country)
	} else {
		coords, err = c.geo.Resolve(ctx, postalCode, country)
	}
	if err != nil {
		return nil, nil, err
	}

	documents, err := c.PointsForecast(ctx, coords.Latitude, coords.Longitude, dataTypes...)
	if err != nil {
		return nil, nil, err
	}

	forecasts := make([]Forecast, 0, len(dataTypes))
	for i, dt := range dataTypes {
		forecast, err := normalizeForecast(dt, documents[i])
		if err != nil {
			return nil, nil, err
		}
		forecasts = append(forecasts, forecast)
	}
	return forecasts, result, nil
}

// normalizeForecast validates one raw forecast document and projects it to
// the return contract: grid documents yield their properties object, the
// others their period list.
func normalizeForecast(dataType DataType, raw json.RawMessage) (Forecast, error) {
	var doc forecastDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Forecast{}, &SchemaError{
			Message: fmt.Sprintf("malformed forecast document: %v", err),
			Raw:     raw,
		}
	}

	if doc.Status == 503 && doc.Detail != nil {
		return Forecast{}, &UpstreamError{Status: doc.Status, Detail: *doc.Detail}
	}
	if doc.Properties == nil {
		return Forecast{}, &SchemaError{Field: "properties", Raw: raw}
	}

	if dataType == DataTypeGrid {
		var gridDoc struct {
			Properties map[string]any `json:"properties"`
		}
		if err := json.Unmarshal(raw, &gridDoc); err != nil {
			return Forecast{}, &SchemaError{Field: "properties", Raw: raw}
		}
		return Forecast{DataType: dataType, Properties: gridDoc.Properties}, nil
	}

	rawPeriods, ok := doc.Properties["periods"]
	if !ok {
		return Forecast{}, &SchemaError{Field: "periods", Raw: raw}
	}
	var periods []map[string]any
	if err := json.Unmarshal(rawPeriods, &periods); err != nil {
		return Forecast{}, &SchemaError{Field: "periods", Raw: raw}
	}
	return Forecast{DataType: dataType, Periods: periods}, nil
}

func forecastLabel(dataType DataType) string {
	if dataType == DataTypeDefault {
		return "default"
	}
	return string(dataType)
}
