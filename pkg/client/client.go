package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

const (
	APIHost       = "https://api.vidora.tv"
	AnalyticsHost = "https://analytics.vidora.tv"

	// Media files can be large, so uploads get their own client with a
	// much longer timeout than the regular API calls.
	requestTimeout = time.Second * 30
	uploadTimeout  = time.Hour
)

// Client talks to the Vidora platform on behalf of one organization. Every
// request is individually signed with the organization's key/secret pair;
// the client keeps no other state, so one instance can serve independent
// calls concurrently.
type Client struct {
	organization string
	accessKey    string
	secret       string

	apiHost       string
	analyticsHost string

	api       *http.Client
	analytics *http.Client
	uploader  *http.Client

	now func() time.Time
}

// New builds a client from the given options. The organization is required
// here; the access key and secret are only checked once a signed call is
// made, so a read-only consumer of pre-signed URLs can be constructed
// without them.
func New(opts Options) (*Client, error) {
	if opts.Organization == "" {
		return nil, ErrorOrganizationMissing
	}

	apiHost := opts.APIHost
	if apiHost == "" {
		apiHost = APIHost
	}
	analyticsHost := opts.AnalyticsHost
	if analyticsHost == "" {
		analyticsHost = AnalyticsHost
	}

	return &Client{
		organization:  opts.Organization,
		accessKey:     opts.AccessKey,
		secret:        opts.Secret,
		apiHost:       apiHost,
		analyticsHost: analyticsHost,
		api:           &http.Client{Timeout: requestTimeout},
		analytics:     &http.Client{Timeout: requestTimeout},
		uploader:      &http.Client{Timeout: uploadTimeout},
		now:           time.Now,
	}, nil
}

// Organization returns the organization ID the client was built for.
func (c *Client) Organization() string {
	return c.organization
}

// path builds an organization-scoped request path.
func (c *Client) path(format string, a ...interface{}) string {
	return fmt.Sprintf("/rest/organizations/%s", c.organization) + fmt.Sprintf(format, a...)
}

// httpClientFor picks the issuing client from the same host value the
// signature was computed against, so the two cannot diverge.
func (c *Client) httpClientFor(host string) *http.Client {
	if host == c.analyticsHost {
		return c.analytics
	}
	return c.api
}

func (c *Client) do(ctx context.Context, hc *http.Client, method string, host string, path string, params map[string]string, body io.Reader, contentType string) ([]byte, error) {
	query, err := c.SignedQuery(method, host, path, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), host+query, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("content-type", contentType)
	}

	res, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return ioutil.ReadAll(res.Body)
}

// call issues a signed request and decodes the JSON response.
func (c *Client) call(ctx context.Context, method string, host string, path string, params map[string]string) (map[string]interface{}, error) {
	b, err := c.do(ctx, c.httpClientFor(host), method, host, path, params, nil, "")
	if err != nil {
		return nil, err
	}

	return decodeJSON(b)
}

func decodeJSON(b []byte) (map[string]interface{}, error) {
	var decoded map[string]interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return decoded, nil
}

// callDiscard issues a signed request and throws the body away. Delete
// style endpoints may answer with an empty or non-JSON body.
func (c *Client) callDiscard(ctx context.Context, method string, host string, path string, params map[string]string) error {
	_, err := c.do(ctx, c.httpClientFor(host), method, host, path, params, nil, "")
	return err
}
