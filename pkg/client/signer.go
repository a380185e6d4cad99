package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// SignatureTTL is how long a generated signature stays valid, carried on
// every request as the `expires` parameter.
const SignatureTTL = 300

// SignedQuery authorizes a request and returns its final query string in
// the form `path?params`, with `access_key`, `expires` and `signature`
// merged into the given parameters. The server recomputes the signature
// from the same canonical payload, so the parameter sorting here and in
// the payload has to match exactly.
//
// The input map is never modified; every call signs a fresh copy.
func (c *Client) SignedQuery(method string, host string, path string, params map[string]string) (string, error) {
	if c.secret == "" {
		return "", &MissingCredentialError{Credential: "secret"}
	}
	if c.accessKey == "" {
		return "", &MissingCredentialError{Credential: "access_key"}
	}
	if host == "" {
		host = c.apiHost
	}
	if path == "" {
		path = c.path("/media")
	}

	signed := make(map[string]string, len(params)+3)
	for k, v := range params {
		signed[k] = v
	}
	signed["access_key"] = c.accessKey
	signed["expires"] = strconv.FormatInt(c.now().Unix()+SignatureTTL, 10)

	// The signature cannot sign itself, so the payload is built before
	// the signature parameter exists.
	payload := strings.Join([]string{
		strings.ToLower(method),
		hostName(host),
		path,
		joinSorted(signed),
	}, "|")

	mac := hmac.New(sha256.New, []byte(c.secret))
	mac.Write([]byte(payload))
	signed["signature"] = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	values := url.Values{}
	for k, v := range signed {
		values.Set(k, v)
	}

	// url.Values.Encode emits keys in sorted order, the same order the
	// payload was signed in.
	return path + "?" + values.Encode(), nil
}

// SignedURL returns the absolute form of SignedQuery, usable directly by
// an external caller without going through this client.
func (c *Client) SignedURL(method string, host string, path string, params map[string]string) (string, error) {
	if host == "" {
		host = c.apiHost
	}
	query, err := c.SignedQuery(method, host, path, params)
	if err != nil {
		return "", err
	}
	return host + query, nil
}

func joinSorted(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	return strings.Join(pairs, "&")
}

// hostName reduces a host URL to its network location, the form the server
// uses when it recomputes the payload.
func hostName(host string) string {
	if u, err := url.Parse(host); err == nil && u.Host != "" {
		return u.Host
	}
	host = strings.TrimPrefix(host, "//")
	if idx := strings.IndexByte(host, '/'); idx != -1 {
		host = host[:idx]
	}
	return host
}
