// Package rpapi provides the authenticated HTTP client for the RP Strength
// training API.
package rpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the RP Strength training API root.
const DefaultBaseURL = "https://training.rpstrength.com/api/training"

// ErrGone marks a mesocycle that was deleted or expired upstream.
// Callers skip these rather than failing the run.
var ErrGone = errors.New("mesocycle no longer available")

// FetchError is a fatal fetch failure: network error, auth rejection, or an
// unexpected status from the API.
type FetchError struct {
	URL    string
	Status int
	Cause  error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetching %s: status %d", e.URL, e.Status)
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Fetcher is the remote-data dependency of the export pipeline.
// The pipeline never builds URLs or touches the network itself; tests and
// offline runs substitute fakes.
type Fetcher interface {
	// FetchIndex returns the raw JSON bytes of the mesocycle index.
	FetchIndex(ctx context.Context) ([]byte, error)
	// FetchExercises returns the raw JSON bytes of the exercise catalog.
	FetchExercises(ctx context.Context) ([]byte, error)
	// FetchMesocycle returns the raw JSON bytes of one detailed mesocycle.
	// Returns ErrGone for mesocycles deleted upstream (HTTP 410).
	FetchMesocycle(ctx context.Context, key string) ([]byte, error)
}

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches JSON from the RP Strength API using headers captured from an
// authenticated browser session.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient HTTPDoer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client. Used by tests.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.httpClient = doer }
}

// NewClient creates a client that sends the given headers on every request.
func NewClient(headers map[string]string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		headers: headers,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchIndex returns the mesocycle index.
func (c *Client) FetchIndex(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.baseURL+"/mesocycles")
}

// FetchExercises returns the exercise catalog.
func (c *Client) FetchExercises(ctx context.Context) ([]byte, error) {
	return c.get(ctx, c.baseURL+"/exercises")
}

// FetchMesocycle returns one detailed mesocycle by key.
func (c *Client) FetchMesocycle(ctx context.Context, key string) ([]byte, error) {
	return c.get(ctx, c.baseURL+"/mesocycles/"+key)
}

// get performs an HTTP GET and returns the response body.
// The transport decompresses gzip responses; brotli is not requested.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Cause: err}
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusGone {
		return nil, fmt.Errorf("%s: %w", url, ErrGone)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Cause: err}
	}

	return body, nil
}
