package nws

import (
	"bytes"
	"encoding/json"
)

// PointsDocument is the metadata document for a coordinate. It links every
// other forecast resource for the location and is never modified by this
// client, only re-fetched.
type PointsDocument struct {
	ID         string            `json:"id"`
	Properties *PointsProperties `json:"properties"`
}

type PointsProperties struct {
	GridID              string `json:"gridId"`
	GridX               int    `json:"gridX"`
	GridY               int    `json:"gridY"`
	CWA                 string `json:"cwa"`
	Forecast            string `json:"forecast"`
	ForecastHourly      string `json:"forecastHourly"`
	ForecastGridData    string `json:"forecastGridData"`
	ForecastOffice      string `json:"forecastOffice"`
	ObservationStations string `json:"observationStations"`
	ForecastZone        string `json:"forecastZone"`
	County              string `json:"county"`
	FireWeatherZone     string `json:"fireWeatherZone"`
	TimeZone            string `json:"timeZone"`
	RadarStation        string `json:"radarStation"`
}

// stationListDocument is the station collection behind a points document's
// observationStations link. The URI list is ordered nearest first by
// upstream; that ordering is assumed, never verified or re-sorted.
type stationListDocument struct {
	ObservationStations []string `json:"observationStations"`
}

// forecastDocument is the shared envelope of forecast, hourly-forecast and
// grid-forecast documents, plus the in-body error marker the API emits on
// partial outages.
type forecastDocument struct {
	Status     int                        `json:"status"`
	Detail     *string                    `json:"detail"`
	Properties map[string]json.RawMessage `json:"properties"`
}

// Observation is the properties object of one observation feature, passed
// through without interpretation.
type Observation map[string]any

// feature is a single GeoJSON feature; only properties are extracted.
type feature struct {
	ID         string      `json:"id"`
	Properties Observation `json:"properties"`
}

// decodeObservations normalizes the payload shapes the observations
// resources produce: a feature collection, a bare feature array, or a
// single feature document.
func decodeObservations(raw json.RawMessage) ([]Observation, error) {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var features []feature
		if err := json.Unmarshal(trimmed, &features); err != nil {
			return nil, &SchemaError{Field: "features", Raw: raw}
		}
		return featureProperties(features), nil
	}

	var doc struct {
		Features   []feature   `json:"features"`
		Properties Observation `json:"properties"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, &SchemaError{Field: "features", Raw: raw}
	}
	if doc.Features != nil {
		return featureProperties(doc.Features), nil
	}
	if doc.Properties != nil {
		return []Observation{doc.Properties}, nil
	}
	return nil, &SchemaError{Field: "features", Raw: raw}
}

func featureProperties(features []feature) []Observation {
	observations := make([]Observation, 0, len(features))
	for _, f := range features {
		observations = append(observations, f.Properties)
	}
	return observations
}
