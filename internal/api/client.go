package api

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Forezy backend.
const DefaultBaseURL = "https://forezy-backend.vercel.app/v1/api"

// Client provides access to the Forezy REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	// tokenSource returns the current access token, or "" when
	// unauthenticated. Consulted per request so the client picks up
	// session changes without rebuilding.
	tokenSource func() string

	maxRetries   int
	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       slog.Default(),
		maxRetries:   3,
		retryBackoff: time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration for idempotent requests.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenSource sets the access token provider for authenticated requests.
func WithTokenSource(fn func() string) ClientOption {
	return func(c *Client) {
		c.tokenSource = fn
	}
}
