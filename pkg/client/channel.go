package client

import (
	"context"
	"net/http"
)

// ChannelStatePublished is the state value a published channel carries.
const ChannelStatePublished = "Published"

// CreateChannel creates a new channel with the given title.
// POST /rest/organizations/{org}/channels.json
func (c *Client) CreateChannel(ctx context.Context, title string) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodPost, c.apiHost, c.path("/channels.json"), map[string]string{
		"title": title,
	})
}

// ListChannels fetches the channels of the organization.
// GET /rest/organizations/{org}/channels.json
func (c *Client) ListChannels(ctx context.Context) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodGet, c.apiHost, c.path("/channels.json"), nil)
}

// UpdateChannel sets properties on a channel.
// PUT /rest/organizations/{org}/channels/{id}/properties.json
func (c *Client) UpdateChannel(ctx context.Context, channelID string, properties map[string]string) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodPut, c.apiHost, c.path("/channels/%s/properties.json", channelID), properties)
}

// PublishChannel flips a channel to the published state. It is plain sugar
// for UpdateChannel with `state=Published`.
func (c *Client) PublishChannel(ctx context.Context, channelID string) (map[string]interface{}, error) {
	return c.UpdateChannel(ctx, channelID, map[string]string{
		"state": ChannelStatePublished,
	})
}

// DeleteChannel removes a channel. The response body is not decoded.
// DELETE /rest/organizations/{org}/channels/{id}
func (c *Client) DeleteChannel(ctx context.Context, channelID string) error {
	return c.callDiscard(ctx, http.MethodDelete, c.apiHost, c.path("/channels/%s", channelID), nil)
}

// AddMediaToChannel links a media item into a channel. The response body is
// not decoded.
// PUT /rest/organizations/{org}/channels/{channel}/media/{media}
func (c *Client) AddMediaToChannel(ctx context.Context, channelID string, mediaID string) error {
	return c.callDiscard(ctx, http.MethodPut, c.apiHost, c.path("/channels/%s/media/%s", channelID, mediaID), nil)
}

// RemoveMediaFromChannel unlinks a media item from a channel. The response
// body is not decoded.
// DELETE /rest/organizations/{org}/channels/{channel}/media/{media}
func (c *Client) RemoveMediaFromChannel(ctx context.Context, channelID string, mediaID string) error {
	return c.callDiscard(ctx, http.MethodDelete, c.apiHost, c.path("/channels/%s/media/%s", channelID, mediaID), nil)
}
