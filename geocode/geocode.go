package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"weathergov/providers/nominatim"
	"weathergov/providers/zippopotam"
)

// ErrInvalidPostalCode is returned when neither lookup strategy can produce
// coordinates for a postal code / country pair.
var ErrInvalidPostalCode = errors.New("invalid postal code")

// Coordinates is a WGS 84 latitude/longitude pair. Both components are
// always finite on the success path.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func NewCoordinates(latitude, longitude float64) Coordinates {
	return Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether both components are finite numbers.
func (c Coordinates) Valid() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}

// Result carries the lookup metadata behind a resolved coordinate, for
// callers that want more than the bare lat/lon.
type Result struct {
	PostalCode  string
	Country     string
	PlaceName   string
	State       string
	Coordinates Coordinates
}

// Service resolves a postal code and 2-letter country code to coordinates.
type Service interface {
	Resolve(ctx context.Context, postalCode, country string) (Coordinates, error)
	// ResolveDetail additionally returns the underlying lookup result.
	ResolveDetail(ctx context.Context, postalCode, country string) (Coordinates, *Result, error)
}

// DomesticProvider defines the interface for US postal-code lookups.
type DomesticProvider interface {
	Lookup(ctx context.Context, postalCode string) (*zippopotam.LookupAPIResponse, error)
}

// InternationalProvider defines the interface for non-US postal-code lookups.
type InternationalProvider interface {
	Search(ctx context.Context, postalCode, country string) (nominatim.SearchAPIResponse, error)
}

// geocodeService implements the Service interface, choosing the lookup
// strategy by country code.
type geocodeService struct {
	domestic      DomesticProvider
	international InternationalProvider
	logger        *slog.Logger
}

// NewService creates a new geocode service with real provider clients.
func NewService(userAgent string, logger *slog.Logger) Service {
	return &geocodeService{
		domestic:      zippopotam.NewClient(),
		international: nominatim.NewClient(userAgent),
		logger:        logger.With("component", "geocode-service"),
	}
}

// NewServiceWithProviders creates a new geocode service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	domestic DomesticProvider,
	international InternationalProvider,
	logger *slog.Logger,
) Service {
	return &geocodeService{
		domestic:      domestic,
		international: international,
		logger:        logger.With("component", "geocode-service"),
	}
}

func (s *geocodeService) Resolve(ctx context.Context, postalCode, country string) (Coordinates, error) {
	coords, _, err := s.ResolveDetail(ctx, postalCode, country)
	return coords, err
}

func (s *geocodeService) ResolveDetail(ctx context.Context, postalCode, country string) (Coordinates, *Result, error) {
	if strings.EqualFold(country, "US") {
		return s.resolveDomestic(ctx, postalCode, country)
	}
	return s.resolveInternational(ctx, postalCode, country)
}

func (s *geocodeService) resolveDomestic(ctx context.Context, postalCode, country string) (Coordinates, *Result, error) {
	resp, err := s.domestic.Lookup(ctx, postalCode)
	if err != nil {
		if errors.Is(err, zippopotam.ErrNotFound) {
			return Coordinates{}, nil, fmt.Errorf("%w: %s", ErrInvalidPostalCode, postalCode)
		}
		return Coordinates{}, nil, fmt.Errorf("failed to look up postal code: %w", err)
	}
	if resp == nil || len(resp.Places) == 0 {
		return Coordinates{}, nil, fmt.Errorf("%w: %s", ErrInvalidPostalCode, postalCode)
	}

	place := resp.Places[0]
	coords, err := parseCoordinates(place.Latitude, place.Longitude)
	if err != nil {
		return Coordinates{}, nil, fmt.Errorf("%w: %s", ErrInvalidPostalCode, postalCode)
	}

	s.logger.Debug("resolved postal code",
		"postal_code", postalCode,
		"country", country,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return coords, &Result{
		PostalCode:  postalCode,
		Country:     country,
		PlaceName:   place.PlaceName,
		State:       place.State,
		Coordinates: coords,
	}, nil
}

func (s *geocodeService) resolveInternational(ctx context.Context, postalCode, country string) (Coordinates, *Result, error) {
	resp, err := s.international.Search(ctx, postalCode, country)
	if err != nil {
		return Coordinates{}, nil, fmt.Errorf("failed to look up postal code: %w", err)
	}
	if len(resp) == 0 {
		return Coordinates{}, nil, fmt.Errorf("%w: %s", ErrInvalidPostalCode, postalCode)
	}

	place := resp[0]
	coords, err := parseCoordinates(place.Lat, place.Lon)
	if err != nil {
		return Coordinates{}, nil, fmt.Errorf("%w: %s", ErrInvalidPostalCode, postalCode)
	}

	s.logger.Debug("resolved postal code",
		"postal_code", postalCode,
		"country", country,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return coords, &Result{
		PostalCode:  postalCode,
		Country:     country,
		PlaceName:   place.DisplayName,
		Coordinates: coords,
	}, nil
}

// parseCoordinates converts the providers' string lat/lon fields, rejecting
// anything non-finite.
func parseCoordinates(lat, lon string) (Coordinates, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q: %w", lat, err)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q: %w", lon, err)
	}

	coords := NewCoordinates(latitude, longitude)
	if !coords.Valid() {
		return Coordinates{}, fmt.Errorf("non-finite coordinates %s,%s", lat, lon)
	}
	return coords, nil
}
