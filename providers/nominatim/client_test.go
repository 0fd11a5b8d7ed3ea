package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("postalcode") != "238801" {
			t.Errorf("postalcode = %q, want 238801", q.Get("postalcode"))
		}
		if q.Get("country") != "SG" {
			t.Errorf("country = %q, want SG", q.Get("country"))
		}
		if q.Get("format") != "json" {
			t.Errorf("format = %q, want json", q.Get("format"))
		}
		if q.Get("limit") != "1" {
			t.Errorf("limit = %q, want 1", q.Get("limit"))
		}
		if r.Header.Get("User-Agent") != "weathergov-go test" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}

		_, _ = w.Write([]byte(`[
			{
				"place_id": 248842033,
				"lat": "1.3039",
				"lon": "103.8358",
				"display_name": "238801, Orchard, Singapore",
				"importance": 0.325
			}
		]`))
	}))
	defer server.Close()

	client := NewClient("weathergov-go test")
	client.baseURL = server.URL

	resp, err := client.Search(context.Background(), "238801", "SG")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}

	if len(resp) != 1 {
		t.Fatalf("got %d places, want 1", len(resp))
	}
	place := resp[0]
	if place.Lat != "1.3039" || place.Lon != "103.8358" {
		t.Errorf("place = %+v", place)
	}
	if place.DisplayName != "238801, Orchard, Singapore" {
		t.Errorf("DisplayName = %q", place.DisplayName)
	}
}

func TestSearchNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient("weathergov-go test")
	client.baseURL = server.URL

	resp, err := client.Search(context.Background(), "00000", "SG")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if len(resp) != 0 {
		t.Errorf("got %d places, want 0", len(resp))
	}
}

func TestSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer server.Close()

	client := NewClient("weathergov-go test")
	client.baseURL = server.URL

	if _, err := client.Search(context.Background(), "238801", "SG"); err == nil {
		t.Fatal("Search() expected error")
	}
}
