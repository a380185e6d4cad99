package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"
)

func testClient(t *testing.T, opts Options) *Client {
	t.Helper()
	if opts.Organization == "" {
		opts.Organization = "org1"
	}
	c, err := New(opts)
	if err != nil {
		t.Fatalf("could not build client: %s", err)
	}
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	return c
}

func signingClient(t *testing.T) *Client {
	return testClient(t, Options{AccessKey: "ak", Secret: "s3cr3t"})
}

func recompute(secret string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSignedQueryDeterministic(t *testing.T) {
	c := signingClient(t)
	params := map[string]string{"title": "clip", "state": "Published"}

	first, err := c.SignedQuery("GET", APIHost, "/rest/organizations/org1/media", params)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.SignedQuery("GET", APIHost, "/rest/organizations/org1/media", params)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("expected identical query strings, got %q and %q", first, second)
	}
}

func TestSignedQueryIgnoresInputOrder(t *testing.T) {
	c := signingClient(t)

	forward := map[string]string{}
	for _, key := range []string{"a", "b", "c", "d"} {
		forward[key] = "v-" + key
	}
	backward := map[string]string{}
	for _, key := range []string{"d", "c", "b", "a"} {
		backward[key] = "v-" + key
	}

	first, err := c.SignedQuery("get", APIHost, "/rest/organizations/org1/media", forward)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.SignedQuery("GET", APIHost, "/rest/organizations/org1/media", backward)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("insertion order leaked into the output: %q vs %q", first, second)
	}
}

func TestSignedQuerySensitivity(t *testing.T) {
	c := signingClient(t)

	base, err := c.SignedQuery("GET", APIHost, "/rest/organizations/org1/media", map[string]string{"title": "clip"})
	if err != nil {
		t.Fatal(err)
	}
	changed, err := c.SignedQuery("GET", APIHost, "/rest/organizations/org1/media", map[string]string{"title": "clip2"})
	if err != nil {
		t.Fatal(err)
	}

	baseValues, _ := url.ParseQuery(strings.SplitN(base, "?", 2)[1])
	changedValues, _ := url.ParseQuery(strings.SplitN(changed, "?", 2)[1])
	if baseValues.Get("signature") == changedValues.Get("signature") {
		t.Error("changing a parameter value did not change the signature")
	}
}

func TestSignedQueryExpires(t *testing.T) {
	c := signingClient(t)

	query, err := c.SignedQuery("GET", APIHost, "/rest/organizations/org1/media", nil)
	if err != nil {
		t.Fatal(err)
	}

	values, err := url.ParseQuery(strings.SplitN(query, "?", 2)[1])
	if err != nil {
		t.Fatal(err)
	}
	expires, err := strconv.ParseInt(values.Get("expires"), 10, 64)
	if err != nil {
		t.Fatalf("expires is not an integer: %s", err)
	}
	if want := c.now().Unix() + SignatureTTL; expires != want {
		t.Errorf("expected expires %d, got %d", want, expires)
	}
}

func TestSignedQueryEmptyParams(t *testing.T) {
	c := signingClient(t)

	query, err := c.SignedQuery("get", APIHost, "/rest/organizations/org1/media", nil)
	if err != nil {
		t.Fatal(err)
	}
	values, err := url.ParseQuery(strings.SplitN(query, "?", 2)[1])
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"access_key", "expires", "signature"} {
		if values.Get(key) == "" {
			t.Errorf("expected %s in the query string", key)
		}
	}

	expires := values.Get("expires")
	payload := "get|api.vidora.tv|/rest/organizations/org1/media|access_key=ak&expires=" + expires
	if want := recompute("s3cr3t", payload); values.Get("signature") != want {
		t.Errorf("expected signature %q, got %q", want, values.Get("signature"))
	}
}

func TestSignedQueryRoundTrip(t *testing.T) {
	c := signingClient(t)

	query, err := c.SignedQuery("PUT", APIHost, "/rest/organizations/org1/media/m1/properties.json", map[string]string{"title": "new title"})
	if err != nil {
		t.Fatal(err)
	}

	values, err := url.ParseQuery(strings.SplitN(query, "?", 2)[1])
	if err != nil {
		t.Fatal(err)
	}

	// Strip the signature and rebuild the canonical payload from what is
	// left; the recomputed signature has to match the one that traveled.
	params := map[string]string{}
	for key := range values {
		if key == "signature" {
			continue
		}
		params[key] = values.Get(key)
	}
	payload := strings.Join([]string{
		"put",
		"api.vidora.tv",
		"/rest/organizations/org1/media/m1/properties.json",
		joinSorted(params),
	}, "|")

	if want := recompute("s3cr3t", payload); values.Get("signature") != want {
		t.Errorf("expected signature %q, got %q", want, values.Get("signature"))
	}
}

func TestSignedQueryMissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "no secret and no access key reports the secret first", opts: Options{}, want: "secret"},
		{name: "no access key", opts: Options{Secret: "s3cr3t"}, want: "access_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, tt.opts)
			_, err := c.SignedQuery("GET", APIHost, "/rest/organizations/org1/media", nil)

			missing := &MissingCredentialError{}
			if !errors.As(err, &missing) {
				t.Fatalf("expected a MissingCredentialError, got %v", err)
			}
			if missing.Credential != tt.want {
				t.Errorf("expected credential %q, got %q", tt.want, missing.Credential)
			}
		})
	}
}

func TestSignedQueryDefaults(t *testing.T) {
	c := signingClient(t)

	query, err := c.SignedQuery("GET", "", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(query, "/rest/organizations/org1/media?") {
		t.Errorf("expected the media base path, got %q", query)
	}
}

func TestSignedURL(t *testing.T) {
	c := signingClient(t)

	signed, err := c.SignedURL("POST", APIHost, "/rest/organizations/org1/media", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(signed, APIHost+"/rest/organizations/org1/media?") {
		t.Errorf("expected an absolute URL on the API host, got %q", signed)
	}
}

func TestHostName(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "https://api.vidora.tv", want: "api.vidora.tv"},
		{host: "http://localhost:8080/some/path", want: "localhost:8080"},
		{host: "api.vidora.tv", want: "api.vidora.tv"},
		{host: "//analytics.vidora.tv/rest", want: "analytics.vidora.tv"},
	}

	for _, tt := range tests {
		if got := hostName(tt.host); got != tt.want {
			t.Errorf("hostName(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}
