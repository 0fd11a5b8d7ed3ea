package nws

import (
	"context"
	"fmt"
	"strings"
)

// ObservationStreamOptions bounds an observation stream. NumStations caps
// how many nearby stations are consulted: 0 means the default of 1,
// negative means every station upstream returns.
type ObservationStreamOptions struct {
	Start       string
	End         string
	NumStations int
}

// GetObservations resolves a postal code and streams observation records
// from the stations nearest the resolved coordinate.
func (c *Client) GetObservations(ctx context.Context, postalCode, country string, opts *ObservationStreamOptions) (*ObservationIterator, error) {
	coords, err := c.geo.Resolve(ctx, postalCode, country)
	if err != nil {
		return nil, err
	}
	return c.GetObservationsByCoordinates(ctx, coords.Latitude, coords.Longitude, opts)
}

// GetObservationsByCoordinates streams observation records for a
// coordinate. Timestamp options are validated eagerly; everything else —
// the points lookup, the station list, and each station's observations —
// is fetched lazily as the iterator advances, so abandoning iteration
// early performs no further network calls.
func (c *Client) GetObservationsByCoordinates(ctx context.Context, latitude, longitude float64, opts *ObservationStreamOptions) (*ObservationIterator, error) {
	stationOpts := &StationObservationsOptions{}
	limit := 1
	if opts != nil {
		stationOpts.Start = opts.Start
		stationOpts.End = opts.End
		if opts.NumStations != 0 {
			limit = opts.NumStations
		}
	}
	// Surface timestamp errors before the first fetch.
	if _, err := stationOpts.normalize(); err != nil {
		return nil, err
	}

	return &ObservationIterator{
		ctx:       ctx,
		client:    c,
		latitude:  latitude,
		longitude: longitude,
		opts:      stationOpts,
		limit:     limit,
	}, nil
}

// ObservationIterator is a pull-driven stream of observation records in
// station distance order (nearest first, as returned by upstream). Use it
// like bufio.Scanner:
//
//	for it.Next() {
//	    record := it.Observation()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
//
// Exhaustion is terminal; a new stream requires a new call, which
// re-resolves and re-fetches everything.
type ObservationIterator struct {
	ctx       context.Context
	client    *Client
	latitude  float64
	longitude float64
	opts      *StationObservationsOptions
	limit     int

	stations  []string
	started   bool
	processed int
	buffered  []Observation
	current   Observation
	err       error
	done      bool
}

// Next advances to the next observation record, fetching the next station's
// observations when the current station is drained. It returns false when
// the stream is exhausted or a fetch fails; Err distinguishes the two.
func (it *ObservationIterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}

	if !it.started {
		stations, err := it.client.stationURIs(it.ctx, it.latitude, it.longitude)
		if err != nil {
			it.fail(err)
			return false
		}
		it.stations = stations
		it.started = true
	}

	for {
		if len(it.buffered) > 0 {
			it.current = it.buffered[0]
			it.buffered = it.buffered[1:]
			return true
		}

		if it.limit > 0 && it.processed >= it.limit {
			it.done = true
			return false
		}
		if it.processed >= len(it.stations) {
			it.done = true
			return false
		}

		stationID := stationIDFromURI(it.stations[it.processed])
		it.processed++

		observations, err := it.client.StationObservations(it.ctx, stationID, it.opts)
		if err != nil {
			it.fail(fmt.Errorf("failed to stream observations for station %s: %w", stationID, err))
			return false
		}
		it.buffered = observations
	}
}

// Observation returns the record produced by the last successful Next call.
func (it *ObservationIterator) Observation() Observation {
	return it.current
}

// Err returns the error that ended iteration, if any.
func (it *ObservationIterator) Err() error {
	return it.err
}

func (it *ObservationIterator) fail(err error) {
	it.err = err
	it.done = true
}

// stationIDFromURI extracts the station identifier, the trailing path
// segment of a station URI.
func stationIDFromURI(uri string) string {
	if idx := strings.LastIndex(uri, "/"); idx >= 0 {
		return uri[idx+1:]
	}
	return uri
}
