// Package mealdb is a small client for TheMealDB JSON API.
//
// Every call is a single GET attempt against a fixed base URL. Failures of any
// kind (transport, non-2xx status, malformed body) are logged and returned
// wrapped in ErrUnavailable; callers show one generic message for all of them.
// A well-formed response without meals is not an error.
package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/idilsaglam/mealdb/internal/debug"
)

// DefaultBaseURL is the public, key-less v1 endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1/"

var (
	// ErrUnavailable wraps every fetch failure.
	ErrUnavailable = errors.New("recipe service unavailable")
	// ErrNotFound is returned when a lookup succeeds but carries no meal.
	ErrNotFound = errors.New("meal not found")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// Response is the envelope every endpoint returns. Meals is nil when the
// service answered {"meals": null}.
type Response struct {
	Meals []map[string]any `json:"meals"`
}

// Client issues requests against one base URL.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request. Zero keeps the http.Client's own timeout.
// A client passed to WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New returns a client for baseURL; an empty baseURL selects DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Fetch GETs endpoint (relative, query already encoded) and decodes the envelope.
func (c *Client) Fetch(ctx context.Context, endpoint string) (*Response, error) {
	resp, err := c.fetch(ctx, endpoint)
	if err != nil {
		debug.Logf("API Fetch Error: GET %s: %v", endpoint, err)
		return nil, fmt.Errorf("%w: GET %s: %w", ErrUnavailable, endpoint, err)
	}
	debug.Logf("GET %s: %d meals", endpoint, len(resp.Meals))
	return resp, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "mealdb-cli/1")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(b)}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return &out, nil
}
