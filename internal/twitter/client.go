// Package twitter fetches and normalizes tweets from the Twitter v1.1 and v2
// APIs. One logical fetch fans out into several upstream calls whose partial
// views are merged per tweet id into domain.Tweet values.
package twitter

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Config holds client configuration.
type Config struct {
	// Timeout bounds each individual upstream call.
	Timeout time.Duration
	// TimezoneOffsetMinutes is the fixed output timezone offset from UTC.
	TimezoneOffsetMinutes int
	// MinSearchResults is the smallest page size the search endpoint accepts.
	MinSearchResults int
}

// Client calls the Twitter API with a caller-supplied credential forwarded
// verbatim on every request. It holds no per-request state and is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cfg        Config
}

// NewClient creates a client against the production Twitter API.
func NewClient(cfg Config) *Client {
	return NewClientWithBaseURL(cfg, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom API host. Tests use
// this to point the client at a local fake upstream.
func NewClientWithBaseURL(cfg Config, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

// get issues one upstream GET and returns the raw body. The upstream reports
// failures in the body rather than the status code, so non-2xx responses are
// returned for classification, not treated as errors here.
func (c *Client) get(ctx context.Context, path, authorization string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errUpstreamRequest(err)
	}
	req.Header.Set("Authorization", authorization)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errUpstreamRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errUpstreamRequest(err)
	}
	return body, nil
}
