package nws

import (
	"context"
	"encoding/json"
	"fmt"
)

// Zones fetches metadata for a zone, or the zone's forecast when forecast
// is set. zoneType is one of the API's zone types (forecast, county, fire).
func (c *Client) Zones(ctx context.Context, zoneType, zoneID string, forecast bool) (json.RawMessage, error) {
	if zoneType == "" {
		return nil, &MissingArgumentError{Name: "zone_type"}
	}
	if zoneID == "" {
		return nil, &MissingArgumentError{Name: "zone_id"}
	}

	path := fmt.Sprintf("/zones/%s/%s", zoneType, zoneID)
	if forecast {
		path += "/forecast"
	}

	raw, err := c.getRaw(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	return raw, nil
}
