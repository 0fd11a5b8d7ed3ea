package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// AlertsOptions filters the alerts resource. AlertID short-circuits to the
// single-alert resource and ignores every other field. Start and End accept
// the same three timestamp layouts as observation windows.
type AlertsOptions struct {
	AlertID   string
	Active    bool
	Start     string
	End       string
	Status    string
	Type      string
	ZoneType  string
	Point     string
	Region    string
	State     string
	Zone      string
	Urgency   string
	Severity  string
	Certainty string
	Limit     int
}

func (o *AlertsOptions) values() (url.Values, error) {
	params := url.Values{}
	if o == nil {
		return params, nil
	}

	if o.Active {
		params.Set("active", "1")
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
	for key, value := range map[string]string{
		"status":    o.Status,
		"type":      o.Type,
		"zone_type": o.ZoneType,
		"point":     o.Point,
		"region":    o.Region,
		"state":     o.State,
		"zone":      o.Zone,
		"urgency":   o.Urgency,
		"severity":  o.Severity,
		"certainty": o.Certainty,
	} {
		if value != "" {
			params.Set(key, value)
		}
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	return params, nil
}

// Alerts fetches alerts filtered by the given options, or one alert when
// AlertID is set. With no options every alert is returned.
func (c *Client) Alerts(ctx context.Context, opts *AlertsOptions) (json.RawMessage, error) {
	if opts != nil && opts.AlertID != "" {
		raw, err := c.getRaw(ctx, fmt.Sprintf("/alerts/%s", opts.AlertID))
		if err != nil {
			return nil, fmt.Errorf("failed to get alert: %w", err)
		}
		return raw, nil
	}

	params, err := opts.values()
	if err != nil {
		return nil, err
	}

	raw, err := c.getRaw(ctx, pathWithQuery("/alerts", params))
	if err != nil {
		return nil, fmt.Errorf("failed to get alerts: %w", err)
	}
	return raw, nil
}

// ActiveAlertsOptions selects one of the active-alert sub-resources. The
// first populated field wins, in the order Count, ZoneID, Area, Region.
type ActiveAlertsOptions struct {
	Count  bool
	ZoneID string
	Area   string
	Region string
}

// ActiveAlerts fetches currently active alerts, optionally scoped to a
// zone, area or region, or just their count.
func (c *Client) ActiveAlerts(ctx context.Context, opts *ActiveAlertsOptions) (json.RawMessage, error) {
	path := "/alerts/active"
	if opts != nil {
		switch {
		case opts.Count:
			path = "/alerts/active/count"
		case opts.ZoneID != "":
			path = fmt.Sprintf("/alerts/active/zone/%s", opts.ZoneID)
		case opts.Area != "":
			path = fmt.Sprintf("/alerts/active/area/%s", opts.Area)
		case opts.Region != "":
			path = fmt.Sprintf("/alerts/active/region/%s", opts.Region)
		}
	}

	raw, err := c.getRaw(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get active alerts: %w", err)
	}
	return raw, nil
}
