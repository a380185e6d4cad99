package client

import (
	"context"
	"net/http"
	"strings"
)

// MediaAnalytics fetches the analytics report for one or more media items,
// joined into a single comma-separated `media_ids` parameter. The request
// is signed against and issued to the analytics host; both come from the
// same host argument, so they cannot disagree.
// GET /rest/organizations/{org}/analytics/media.json
func (c *Client) MediaAnalytics(ctx context.Context, mediaIDs ...string) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodGet, c.analyticsHost, c.path("/analytics/media.json"), map[string]string{
		"media_ids": strings.Join(mediaIDs, ","),
	})
}

// AccountAnalytics fetches the organization-wide analytics report.
// GET /rest/organizations/{org}/analytics/account.json
func (c *Client) AccountAnalytics(ctx context.Context) (map[string]interface{}, error) {
	return c.call(ctx, http.MethodGet, c.analyticsHost, c.path("/analytics/account.json"), nil)
}
