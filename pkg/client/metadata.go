package client

import (
	"context"
	"encoding/json"
	"net/http"
)

// CustomProperties returns the names of the custom metadata properties
// registered on the account.
// GET /rest/organizations/{org}/media/properties/custom.json
func (c *Client) CustomProperties(ctx context.Context) ([]string, error) {
	b, err := c.do(ctx, c.api, http.MethodGet, c.apiHost, c.path("/media/properties/custom.json"), nil, nil, "")
	if err != nil {
		return nil, err
	}

	listing := struct {
		CustomPropertyTypes []struct {
			TypeName string `json:"type_name"`
		} `json:"custom_property_types"`
	}{}
	if err := json.Unmarshal(b, &listing); err != nil {
		return nil, &DecodeError{Err: err}
	}

	names := make([]string, 0, len(listing.CustomPropertyTypes))
	for _, propertyType := range listing.CustomPropertyTypes {
		names = append(names, propertyType.TypeName)
	}
	return names, nil
}

// CreateCustomProperties registers one or more custom property names, one
// signed call per name. There is no batch endpoint.
// PUT /rest/organizations/{org}/media/properties/custom/{name}
func (c *Client) CreateCustomProperties(ctx context.Context, names ...string) error {
	for _, name := range names {
		if _, err := c.call(ctx, http.MethodPut, c.apiHost, c.path("/media/properties/custom/%s", name), nil); err != nil {
			return err
		}
	}
	return nil
}

// DeleteCustomProperties removes one or more custom property names, one
// signed call per name. Response bodies are not decoded.
// DELETE /rest/organizations/{org}/media/properties/custom/{name}
func (c *Client) DeleteCustomProperties(ctx context.Context, names ...string) error {
	for _, name := range names {
		if err := c.callDiscard(ctx, http.MethodDelete, c.apiHost, c.path("/media/properties/custom/%s", name), nil); err != nil {
			return err
		}
	}
	return nil
}
