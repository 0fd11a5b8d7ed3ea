package nws

import (
	"context"
	"errors"
	"testing"
)

func TestFormatPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "rounds to 4 decimal places",
			latitude:  39.11539,
			longitude: -107.65840,
			want:      "39.1154,-107.6584",
		},
		{
			name:      "trims trailing zeros",
			latitude:  41.5,
			longitude: -73.25,
			want:      "41.5,-73.25",
		},
		{
			name:      "already at precision",
			latitude:  40.7128,
			longitude: -74.006,
			want:      "40.7128,-74.006",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPoint(tt.latitude, tt.longitude); got != tt.want {
				t.Errorf("formatPoint(%v, %v) = %q, want %q", tt.latitude, tt.longitude, got, tt.want)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	transport := &fakeTransport{
		responses: map[string]string{
			"https://api.weather.gov/points/39.1154,-107.6584": `{
				"id": "https://api.weather.gov/points/39.1154,-107.6584",
				"properties": {
					"gridId": "GJT",
					"gridX": 101,
					"gridY": 92,
					"cwa": "GJT",
					"forecast": "https://api.weather.gov/gridpoints/GJT/101,92/forecast",
					"forecastHourly": "https://api.weather.gov/gridpoints/GJT/101,92/forecast/hourly",
					"forecastGridData": "https://api.weather.gov/gridpoints/GJT/101,92",
					"observationStations": "https://api.weather.gov/gridpoints/GJT/101,92/stations",
					"timeZone": "America/Denver"
				}
			}`,
		},
	}
	client := newTestClient(transport, &fakeGeoResolver{})

	doc, err := client.Points(context.Background(), 39.11539, -107.65840)
	if err != nil {
		t.Fatalf("Points() unexpected error: %v", err)
	}

	if doc.Properties == nil {
		t.Fatal("Points() returned document without properties")
	}
	if doc.Properties.GridID != "GJT" {
		t.Errorf("GridID = %q, want %q", doc.Properties.GridID, "GJT")
	}
	if doc.Properties.Forecast != "https://api.weather.gov/gridpoints/GJT/101,92/forecast" {
		t.Errorf("Forecast link = %q", doc.Properties.Forecast)
	}
	if len(transport.calls) != 1 || transport.calls[0] != "https://api.weather.gov/points/39.1154,-107.6584" {
		t.Errorf("unexpected transport calls: %v", transport.calls)
	}
}

func TestForecastLink(t *testing.T) {
	props := &PointsProperties{
		Forecast:         "forecast-link",
		ForecastHourly:   "hourly-link",
		ForecastGridData: "grid-link",
	}

	tests := []struct {
		name     string
		dataType DataType
		want     string
	}{
		{name: "default", dataType: DataTypeDefault, want: "forecast-link"},
		{name: "hourly", dataType: DataTypeHourly, want: "hourly-link"},
		{name: "grid", dataType: DataTypeGrid, want: "grid-link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := forecastLink(props, tt.dataType); got != tt.want {
				t.Errorf("forecastLink(%q) = %q, want %q", tt.dataType, got, tt.want)
			}
		})
	}
}

func TestStationURIs(t *testing.T) {
	tests := []struct {
		name        string
		responses   map[string]string
		wantErr     bool
		errMessage  string
		wantLen     int
		wantFirst   string
		wantOrdered []string
	}{
		{
			name: "stations in upstream order",
			responses: map[string]string{
				"https://api.weather.gov/points/39.1154,-107.6584": `{
					"properties": {"observationStations": "https://api.weather.gov/gridpoints/GJT/101,92/stations"}
				}`,
				"https://api.weather.gov/gridpoints/GJT/101,92/stations": `{
					"observationStations": [
						"https://api.weather.gov/stations/KASE",
						"https://api.weather.gov/stations/KEGE",
						"https://api.weather.gov/stations/KGJT"
					]
				}`,
			},
			wantLen: 3,
			wantOrdered: []string{
				"https://api.weather.gov/stations/KASE",
				"https://api.weather.gov/stations/KEGE",
				"https://api.weather.gov/stations/KGJT",
			},
		},
		{
			name: "points document without properties",
			responses: map[string]string{
				"https://api.weather.gov/points/39.1154,-107.6584": `{"title": "unexpected"}`,
			},
			wantErr:    true,
			errMessage: "No Observation Stations found",
		},
		{
			name: "properties without observation stations link",
			responses: map[string]string{
				"https://api.weather.gov/points/39.1154,-107.6584": `{"properties": {"gridId": "GJT"}}`,
			},
			wantErr:    true,
			errMessage: "No Observation Stations found",
		},
		{
			name: "station list without observationStations field",
			responses: map[string]string{
				"https://api.weather.gov/points/39.1154,-107.6584": `{
					"properties": {"observationStations": "https://api.weather.gov/gridpoints/GJT/101,92/stations"}
				}`,
				"https://api.weather.gov/gridpoints/GJT/101,92/stations": `{"features": []}`,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &fakeTransport{responses: tt.responses}
			client := newTestClient(transport, &fakeGeoResolver{})

			stations, err := client.stationURIs(context.Background(), 39.11539, -107.65840)

			if tt.wantErr {
				if err == nil {
					t.Fatal("stationURIs() expected error")
				}
				var schemaErr *SchemaError
				if !errors.As(err, &schemaErr) {
					t.Fatalf("stationURIs() error = %v, want SchemaError", err)
				}
				if tt.errMessage != "" && schemaErr.Error() != tt.errMessage {
					t.Errorf("error message = %q, want %q", schemaErr.Error(), tt.errMessage)
				}
				if len(schemaErr.Raw) == 0 {
					t.Error("SchemaError must carry the raw document")
				}
				return
			}

			if err != nil {
				t.Fatalf("stationURIs() unexpected error: %v", err)
			}
			if len(stations) != tt.wantLen {
				t.Fatalf("stationURIs() returned %d stations, want %d", len(stations), tt.wantLen)
			}
			for i, want := range tt.wantOrdered {
				if stations[i] != want {
					t.Errorf("stations[%d] = %q, want %q", i, stations[i], want)
				}
			}
		})
	}
}
