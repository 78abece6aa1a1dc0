// Package upstream holds the outbound HTTP plumbing shared by the provider
// adapters: bounded single-attempt requests, Retry-After parsing and lenient
// JSON number decoding.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds each outbound call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// NewHTTPClient returns an http.Client whose requests are bounded by timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Client issues GET requests against one provider. There are no retries:
// each call is a single attempt.
type Client struct {
	name       string
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a Client for the provider called name.
func NewClient(name string, httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultTimeout)
	}
	return &Client{
		name:       name,
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the provider base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get requests baseURL+path with query. The caller owns the response body.
// Transport failures, including timeouts and cancellation, are returned
// wrapped with the provider name.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid url: %w", c.name, err)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")

	log.Printf("DEBUG %s: GET %s%s", c.name, endpoint.Host, endpoint.Path)

	start := time.Now()
	// #nosec G107 -- URL built from the configured provider base URL
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if IsTimeout(err) {
			log.Printf("WARN %s: request timed out after %s", c.name, time.Since(start).Round(time.Millisecond))
		} else {
			log.Printf("WARN %s: request failed: %v", c.name, err)
		}
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("WARN %s: status %d", c.name, resp.StatusCode) // #nosec G706 -- numeric status code
	}
	return resp, nil
}

// IsTimeout reports whether err is a deadline or network timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// RetryAfter parses the Retry-After header in either delay-seconds or
// HTTP-date form. It returns zero when the header is absent or in the past.
func RetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if when, err := http.ParseTime(retryAfter); err == nil {
		until := time.Until(when)
		if until > 0 {
			return until
		}
	}

	return 0
}
