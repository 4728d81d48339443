package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production OneSignal REST API root.
const DefaultBaseURL = "https://onesignal.com/api/v1"

// Response is the parsed JSON body returned by the OneSignal API.
// The client performs no semantic validation of it: a body that parses as JSON
// resolves as success even when the service encoded an error inside it, and no
// HTTP status code is inspected. Callers that need stricter handling inspect
// the map themselves.
type Response map[string]any

// Client is a thin wrapper around the OneSignal REST API. It holds the
// credentials captured at construction time and reuses them for every call.
// All fields are read-only after construction, so a single Client is safe for
// concurrent use.
type Client struct {
	apiKey  string
	appID   string
	sandbox bool
	baseURL string

	// client is reused across requests for connection pooling and performance
	client *http.Client
}

// Option configures a Client during construction.
type Option func(*Client)

// WithSandbox marks iOS registrations as targeting Apple's sandbox push
// environment by setting the registration test flag.
func WithSandbox() Option {
	return func(c *Client) {
		c.sandbox = true
	}
}

// WithHTTPClient sets a custom HTTP client for all requests.
// Useful for custom transports, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithBaseURL overrides the API root. Primarily for tests pointing the client
// at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout sets the per-request timeout on the client's HTTP client.
// Default is 30 seconds if not specified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// New creates a OneSignal client from a REST API key and an application id.
// No validation is performed here: malformed credentials surface as remote API
// errors at call time. Use NewFromConfig for validated, env-driven
// construction.
func New(apiKey, appID string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		appID:   appID,
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second, // Per-request timeout, overridden by WithTimeout
			Transport: &http.Transport{
				MaxIdleConns:        100,              // Total connections across all hosts
				MaxIdleConnsPerHost: 10,               // Connections per endpoint
				IdleConnTimeout:     90 * time.Second, // Close idle connections after 90s
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues a single JSON request and parses the JSON response.
// Every request carries the Basic auth header and the fixed content headers.
// Exactly two failure classes leave this function: ErrRequestFailed when the
// HTTP exchange itself fails, and ErrWrongJSONFormat when the body is not
// valid JSON. Both keep the underlying error reachable via errors.Is.
func (c *Client) do(ctx context.Context, method, path string, body any) (Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload to JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Basic "+c.apiKey)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	var parsed Response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Join(ErrWrongJSONFormat, err)
	}

	return parsed, nil
}
