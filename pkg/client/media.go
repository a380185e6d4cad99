package client

import (
	"context"
	"net/http"
)

// MediaInfo fetches the properties of a single media item.
// GET /rest/organizations/{org}/media/{id}/properties.json
func (c *Client) MediaInfo(ctx context.Context, mediaID string) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodGet, c.apiHost, c.path("/media/%s/properties.json", mediaID), nil)
}

// MediaEncodings fetches the encoding states of a media item.
// GET /rest/organizations/{org}/media/{id}/encodings.json
func (c *Client) MediaEncodings(ctx context.Context, mediaID string) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodGet, c.apiHost, c.path("/media/%s/encodings.json", mediaID), nil)
}

// ListMedia fetches the media catalog of the organization.
// GET /rest/organizations/{org}/media/all.json
func (c *Client) ListMedia(ctx context.Context) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodGet, c.apiHost, c.path("/media/all.json"), nil)
}

// UpdateMedia sets properties on a media item.
// PUT /rest/organizations/{org}/media/{id}/properties.json
func (c *Client) UpdateMedia(ctx context.Context, mediaID string, properties map[string]string) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodPut, c.apiHost, c.path("/media/%s/properties.json", mediaID), properties)
}

// DeleteMedia removes a media item. The response body is not decoded.
// DELETE /rest/organizations/{org}/media/{id}
func (c *Client) DeleteMedia(ctx context.Context, mediaID string) error {
	return c.callDiscard(ctx, http.MethodDelete, c.apiHost, c.path("/media/%s", mediaID), nil)
}
