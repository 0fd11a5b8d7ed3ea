// Package nws is a client for the National Weather Service web API
// (https://www.weather.gov/documentation/services-web-api). It builds
// requests against the fixed set of API resources, negotiates the response
// format, and reshapes the JSON payloads into predictable return values.
package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"weathergov/geocode"
)

// Sample requests:
// - https://api.weather.gov/points/39.1154,-107.6584
// - https://api.weather.gov/stations/KASE/observations
const (
	defaultBaseURL   = "https://api.weather.gov"
	defaultUserAgent = "weathergov-go (weathergov@example.com)"
)

// Accept header values supported by the API.
const (
	AcceptGeoJSON = "application/geo+json"
	AcceptJSONLD  = "application/ld+json"
	AcceptDWML    = "application/vnd.noaa.dwml+xml"
	AcceptOXML    = "application/vnd.noaa.obs+xml"
)

// GeoResolver resolves a postal code and country to coordinates. It is
// satisfied by geocode.Service.
type GeoResolver interface {
	Resolve(ctx context.Context, postalCode, country string) (geocode.Coordinates, error)
	ResolveDetail(ctx context.Context, postalCode, country string) (geocode.Coordinates, *geocode.Result, error)
}

// Config holds client construction settings. The zero value is usable;
// unset fields fall back to defaults.
type Config struct {
	BaseURL    string
	UserAgent  string
	Accept     string
	Timeout    time.Duration
	MaxRetries int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Accept == "" {
		c.Accept = AcceptGeoJSON
	}
	return c
}

// Client talks to the NWS API. Every call is independent and request
// scoped; the client keeps no state between calls and is safe for
// concurrent use as long as its Transport is.
type Client struct {
	transport Transport
	geo       GeoResolver
	baseURL   string
	logger    *slog.Logger
}

// NewClient creates a client with the default HTTP transport and geocoding
// service.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	cfg = cfg.withDefaults()

	transport := NewHTTPTransport(TransportConfig{
		UserAgent:  cfg.UserAgent,
		Accept:     cfg.Accept,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
	}, logger)

	return &Client{
		transport: transport,
		geo:       geocode.NewService(cfg.UserAgent, logger),
		baseURL:   cfg.BaseURL,
		logger:    logger.With("component", "nws-client"),
	}
}

// NewClientWithDependencies creates a client with custom transport and
// geocoding collaborators. This is useful for testing with mocks.
func NewClientWithDependencies(transport Transport, geo GeoResolver, logger *slog.Logger) *Client {
	return &Client{
		transport: transport,
		geo:       geo,
		baseURL:   defaultBaseURL,
		logger:    logger.With("component", "nws-client"),
	}
}

// resolveURI turns an API path into an absolute URI. Absolute links from
// points documents pass through untouched.
func (c *Client) resolveURI(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}

// getRaw fetches a resource and returns the raw document bytes.
func (c *Client) getRaw(ctx context.Context, path string) (json.RawMessage, error) {
	uri := c.resolveURI(path)

	c.logger.Debug("requesting resource", "uri", uri)

	body, err := c.transport.Get(ctx, uri)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// getJSON fetches a resource and decodes it. Malformed bodies surface as a
// SchemaError carrying the raw response.
func (c *Client) getJSON(ctx context.Context, path string, out any) (json.RawMessage, error) {
	body, err := c.getRaw(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, &SchemaError{
			Message: fmt.Sprintf("malformed response document: %v", err),
			Raw:     body,
		}
	}
	return body, nil
}

// pathWithQuery appends an encoded query string when any parameters are set.
func pathWithQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
