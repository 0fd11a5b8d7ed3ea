//go:build integration

package zippopotam

import (
	"context"
	"testing"
)

func TestClient_Lookup_Integration(t *testing.T) {
	client := NewClient()

	resp, err := client.Lookup(context.Background(), "80424")
	if err != nil {
		t.Fatalf("Failed to look up postal code: %v", err)
	}

	if resp.PostCode != "80424" {
		t.Errorf("PostCode = %q, want 80424", resp.PostCode)
	}
	if len(resp.Places) == 0 {
		t.Fatal("No places returned")
	}

	place := resp.Places[0]
	t.Logf("Place: %s, %s (%s, %s)", place.PlaceName, place.State, place.Latitude, place.Longitude)

	if place.Latitude == "" || place.Longitude == "" {
		t.Error("Place is missing coordinates")
	}
}

func TestClient_Lookup_Integration_NotFound(t *testing.T) {
	client := NewClient()

	if _, err := client.Lookup(context.Background(), "00000"); err == nil {
		t.Fatal("Expected lookup failure for unknown postal code")
	}
}
