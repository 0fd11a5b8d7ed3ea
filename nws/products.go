package nws

import (
	"context"
	"encoding/json"
	"fmt"
)

// Products fetches a single text product by id.
func (c *Client) Products(ctx context.Context, productID string) (json.RawMessage, error) {
	if productID == "" {
		return nil, &MissingArgumentError{Name: "product_id"}
	}
	raw, err := c.getRaw(ctx, fmt.Sprintf("/products/%s", productID))
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return raw, nil
}

// ProductTypesOptions narrows the product types resource. Locations
// requires TypeID; LocationID further narrows to one issuing location.
type ProductTypesOptions struct {
	TypeID     string
	Locations  bool
	LocationID string
}

// ProductTypes fetches product types with an active product, or the
// locations issuing a given type when Locations is set.
func (c *Client) ProductTypes(ctx context.Context, opts *ProductTypesOptions) (json.RawMessage, error) {
	path := "/products/types"
	switch {
	case opts == nil:
	case opts.Locations:
		if opts.TypeID == "" {
			return nil, &MissingArgumentError{Name: "type_id"}
		}
		path = fmt.Sprintf("/products/types/%s/locations", opts.TypeID)
		if opts.LocationID != "" {
			path = fmt.Sprintf("%s/%s", path, opts.LocationID)
		}
	case opts.TypeID != "":
		path = fmt.Sprintf("/products/types/%s", opts.TypeID)
	}

	raw, err := c.getRaw(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get product types: %w", err)
	}
	return raw, nil
}

// ProductLocationsOptions narrows the product locations resource to the
// types issued by one location.
type ProductLocationsOptions struct {
	LocationID string
}

// ProductLocations fetches locations with active products.
func (c *Client) ProductLocations(ctx context.Context, opts *ProductLocationsOptions) (json.RawMessage, error) {
	path := "/products/locations"
	if opts != nil && opts.LocationID != "" {
		path = fmt.Sprintf("/products/locations/%s/types", opts.LocationID)
	}

	raw, err := c.getRaw(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get product locations: %w", err)
	}
	return raw, nil
}

// Offices fetches metadata about a weather forecast office.
func (c *Client) Offices(ctx context.Context, officeID string) (json.RawMessage, error) {
	if officeID == "" {
		return nil, &MissingArgumentError{Name: "office_id"}
	}
	raw, err := c.getRaw(ctx, fmt.Sprintf("/offices/%s", officeID))
	if err != nil {
		return nil, fmt.Errorf("failed to get office: %w", err)
	}
	return raw, nil
}
