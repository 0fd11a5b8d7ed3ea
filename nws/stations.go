package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// StationsOptions filters the station list resource. StationID encodes as
// the query key "id", the alias the API expects.
type StationsOptions struct {
	StationID string
	State     string
	Limit     int
}

func (o *StationsOptions) values() url.Values {
	params := url.Values{}
	if o == nil {
		return params
	}
	if o.StationID != "" {
		params.Set("id", o.StationID)
	}
	if o.State != "" {
		params.Set("state", o.State)
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	return params
}

// Stations fetches US weather stations and their metadata, unmodified.
func (c *Client) Stations(ctx context.Context, opts *StationsOptions) (json.RawMessage, error) {
	raw, err := c.getRaw(ctx, pathWithQuery("/stations", opts.values()))
	if err != nil {
		return nil, fmt.Errorf("failed to get stations: %w", err)
	}
	return raw, nil
}

// StationObservationsOptions selects an observation window or a single
// record for a station. Current and RecordID are mutually exclusive; Start
// and End accept the three timestamp layouts documented on
// normalizeTimestamp and are padded to full UTC date-times.
type StationObservationsOptions struct {
	Start    string
	End      string
	Limit    int
	Current  bool
	RecordID string
}

// normalize validates the option combination and returns the encoded query
// parameters for the windowed-list mode.
func (o *StationObservationsOptions) normalize() (url.Values, error) {
	params := url.Values{}
	if o == nil {
		return params, nil
	}
	if o.Current && o.RecordID != "" {
		return nil, ErrConflictingParameters
	}

	if o.Start != "" {
		start, err := normalizeStart(o.Start)
		if err != nil {
			return nil, err
		}
		params.Set("start", start)
	}
	if o.End != "" {
		end, err := normalizeEnd(o.End)
		if err != nil {
			return nil, err
		}
		params.Set("end", end)
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	return params, nil
}

// StationObservations fetches observation records for one station. Every
// mode normalizes to a slice of observation property objects: the windowed
// list yields one element per feature, Current and RecordID yield a single
// element.
//
// Note: the API delays observation indexing for low-traffic stations, so a
// start/end window can come back empty even when records exist.
func (c *Client) StationObservations(ctx context.Context, stationID string, opts *StationObservationsOptions) ([]Observation, error) {
	if stationID == "" {
		return nil, &MissingArgumentError{Name: "station_id"}
	}

	params, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/stations/%s/observations", stationID)
	switch {
	case opts != nil && opts.RecordID != "":
		path = fmt.Sprintf("%s/%s", path, opts.RecordID)
	case opts != nil && opts.Current:
		path += "/current"
	default:
		path = pathWithQuery(path, params)
	}

	raw, err := c.getRaw(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get station observations: %w", err)
	}
	return decodeObservations(raw)
}
