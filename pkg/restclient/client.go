package restclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/oak/internal/interfaces"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultTimeout = 10 * time.Second

// Failure categories for an upstream GET. Callers can pick these apart
// with errors.Is and decide whether to propagate or default.
var (
	// ErrUnreachable covers transport-level failures: DNS, refused
	// connections, timeouts.
	ErrUnreachable = errors.New("upstream unreachable")
	// ErrBadStatus covers any non-2xx response status.
	ErrBadStatus = errors.New("upstream returned non-success status")
	// ErrDecode covers a 2xx response whose body could not be decoded
	// into the expected shape.
	ErrDecode = errors.New("failed to decode upstream response")
)

// Page is the generic paginated envelope returned by the upstream API.
// Next and Previous are opaque continuation cursors; this service never
// follows them. Results preserves upstream ordering.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Client performs single synchronous GET requests against fully-formed
// URLs and decodes JSON bodies. No retries, no circuit breaking.
type Client struct {
	httpClient *http.Client
	logger     interfaces.Logger
}

// NewClient builds a Client whose transport is instrumented with
// otelhttp. A non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration, logger interfaces.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// GetJSON issues one GET against url and decodes the response body into
// out. Every failure mode is reported as a categorized error; the logger
// receives a diagnostic trace but is never used for control flow.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("failed to build upstream request", "url", url, "error", err)
		return fmt.Errorf("%w: building request for %s: %v", ErrUnreachable, url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("upstream call failed", "url", url, "error", err)
		return fmt.Errorf("%w: GET %s: %v", ErrUnreachable, url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close upstream response body", "url", url, "error", cerr)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("upstream returned bad status", "url", url, "status", resp.StatusCode)
		return fmt.Errorf("%w: GET %s: status %d", ErrBadStatus, url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode upstream body", "url", url, "error", err)
		return fmt.Errorf("%w: GET %s: %v", ErrDecode, url, err)
	}

	return nil
}
