package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Transport issues a GET against a fully resolved URI and returns the raw
// response body. Implementations must be safe for concurrent use; the
// client above them holds no shared mutable state.
type Transport interface {
	Get(ctx context.Context, uri string) ([]byte, error)
}

// TransportConfig bundles HTTP client and resilience settings for the
// default transport.
type TransportConfig struct {
	UserAgent       string
	Accept          string
	Timeout         time.Duration
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func (c TransportConfig) withDefaults() TransportConfig {
	if c.Accept == "" {
		c.Accept = AcceptGeoJSON
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = 500 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 5 * time.Second
	}
	return c
}

// transientError marks a failure worth retrying: network errors, rate
// limits and 5xx responses.
type transientError struct {
	inner error
}

func (e *transientError) Error() string { return e.inner.Error() }
func (e *transientError) Unwrap() error { return e.inner }

// HTTPTransport is the default Transport: a plain HTTP GET with user-agent
// and accept headers, bounded exponential-backoff retries for transient
// failures, and a circuit breaker in front of the upstream.
type HTTPTransport struct {
	client  *http.Client
	cfg     TransportConfig
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

func NewHTTPTransport(cfg TransportConfig, logger *slog.Logger) *HTTPTransport {
	cfg = cfg.withDefaults()

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nws-api",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &HTTPTransport{
		client:  &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		breaker: cb,
		logger:  logger.With("component", "nws-transport"),
	}
}

// Get fetches the URI, retrying transient failures with exponential backoff
// up to MaxRetries additional attempts. When retries run out the last
// underlying error is returned, so a persistent 503 still surfaces as an
// UpstreamError with the upstream detail attached.
func (t *HTTPTransport) Get(ctx context.Context, uri string) ([]byte, error) {
	delay := t.cfg.InitialInterval
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := t.get(ctx, uri)
		if err == nil {
			return body, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("circuit breaker open: %w", err)
		}

		var transient *transientError
		if !errors.As(err, &transient) {
			return nil, err
		}
		if attempt >= t.cfg.MaxRetries {
			return nil, transient.inner
		}

		t.logger.Warn("retrying request",
			"uri", uri,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if delay > t.cfg.MaxInterval {
			delay = t.cfg.MaxInterval
		}
	}
}

func (t *HTTPTransport) get(ctx context.Context, uri string) ([]byte, error) {
	result, err := t.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("User-Agent", t.cfg.UserAgent)
		req.Header.Set("Accept", t.cfg.Accept)

		resp, err := t.client.Do(req)
		if err != nil {
			return nil, &transientError{inner: fmt.Errorf("failed to fetch: %w", err)}
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &transientError{inner: fmt.Errorf("failed to read response body: %w", err)}
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return nil, &transientError{inner: upstreamErrorFromBody(resp.StatusCode, body)}
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return nil, upstreamErrorFromBody(resp.StatusCode, body)
		}

		return body, nil
	})
	if err != nil {
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return body, nil
}

// upstreamErrorFromBody decodes an RFC 7807 style problem document when the
// API provides one, falling back to the raw body text.
func upstreamErrorFromBody(status int, body []byte) *UpstreamError {
	var problem struct {
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &problem); err == nil && problem.Detail != "" {
		if problem.Status != 0 {
			status = problem.Status
		}
		return &UpstreamError{Status: status, Detail: problem.Detail}
	}
	return &UpstreamError{Status: status, Detail: string(body)}
}
