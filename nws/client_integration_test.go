//go:build integration

package nws

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func integrationClient() *Client {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return NewClient(Config{}, logger)
}

func TestClient_Points_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area
	lat := 39.11539
	lon := -107.65840

	client := integrationClient()

	t.Logf("Making API call to NWS Points API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	doc, err := client.Points(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get point data: %v", err)
	}
	if doc.Properties == nil {
		t.Fatal("Point document has no properties")
	}

	t.Logf("Point Details:")
	t.Logf("  Grid ID: %s", doc.Properties.GridID)
	t.Logf("  Grid X: %d", doc.Properties.GridX)
	t.Logf("  Grid Y: %d", doc.Properties.GridY)
	t.Logf("  CWA: %s", doc.Properties.CWA)
	t.Logf("  Time Zone: %s", doc.Properties.TimeZone)

	if doc.Properties.Forecast == "" {
		t.Error("Point document has no forecast link")
	}
	if doc.Properties.ObservationStations == "" {
		t.Error("Point document has no observation stations link")
	}
}

func TestClient_GetForecasts_Integration(t *testing.T) {
	client := integrationClient()

	forecasts, err := client.GetForecasts(context.Background(), "81611", "US", nil)
	if err != nil {
		t.Fatalf("Failed to get forecasts: %v", err)
	}
	if len(forecasts) != 1 {
		t.Fatalf("Got %d forecasts, want 1", len(forecasts))
	}
	if len(forecasts[0].Properties) == 0 {
		t.Error("Grid forecast has no properties")
	}

	t.Logf("Grid forecast carries %d property groups", len(forecasts[0].Properties))
}

func TestClient_GetObservations_Integration(t *testing.T) {
	client := integrationClient()

	stream, err := client.GetObservations(context.Background(), "81611", "US", nil)
	if err != nil {
		t.Fatalf("Failed to start observation stream: %v", err)
	}

	count := 0
	for stream.Next() {
		obs := stream.Observation()
		if count == 0 {
			t.Logf("First observation: station=%v description=%v",
				obs["station"], obs["textDescription"])
		}
		count++
		if count >= 5 {
			break
		}
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("Observation stream failed: %v", err)
	}

	t.Logf("Streamed %d observations", count)
}

func TestClient_ActiveAlerts_Integration(t *testing.T) {
	client := integrationClient()

	raw, err := client.ActiveAlerts(context.Background(), &ActiveAlertsOptions{Count: true})
	if err != nil {
		t.Fatalf("Failed to get active alert count: %v", err)
	}

	t.Logf("Active alert count response:\n%s", raw)
}
