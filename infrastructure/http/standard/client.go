// ABOUTME: Standard HTTP client implementation with fixed timeout and header support
// ABOUTME: Single attempt per request with an optional politeness rate limiter

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"svg-icon-library/core/interfaces"
)

const userAgent = "SVGIconLibrary/1.0"

// DefaultTimeout bounds every catalog request. Providers make a single
// blocking round trip per call with no retry.
const DefaultTimeout = 10 * time.Second

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewRateLimitedHTTPClient creates a client that additionally paces requests
// at rps requests per second with the given burst. Listing fetches hit
// public APIs with unauthenticated quotas; pacing keeps a browse session
// from exhausting them. This is per-client pacing, not coordination across
// providers.
func NewRateLimitedHTTPClient(timeout time.Duration, rps float64, burst int) *StandardHTTPClient {
	c := NewStandardHTTPClient(timeout)
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return c.GetWithHeaders(ctx, url, nil)
}

// GetWithHeaders performs an HTTP GET request with additional request headers
func (c *StandardHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
