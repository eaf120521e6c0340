// Package github is a thin REST client for the few GitHub calls gitdeck
// makes: the OAuth device flow and release publishing. Requests are sent
// once; there is no retry or backoff.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrz1836/gitdeck/internal/constants"
	deckerrors "github.com/mrz1836/gitdeck/internal/errors"
)

const userAgent = "gitdeck"

// Client talks to the GitHub REST API and OAuth endpoints.
type Client struct {
	apiURL     string
	oauthURL   string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIURL overrides the REST root, e.g. for GitHub Enterprise or tests.
func WithAPIURL(u string) Option {
	return func(c *Client) { c.apiURL = strings.TrimSuffix(u, "/") }
}

// WithOAuthURL overrides the root of the device flow endpoints.
func WithOAuthURL(u string) Option {
	return func(c *Client) { c.oauthURL = strings.TrimSuffix(u, "/") }
}

// WithToken sets the bearer token used for REST calls.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client with public GitHub defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		apiURL:     constants.DefaultGitHubAPIURL,
		oauthURL:   constants.DefaultGitHubOAuthURL,
		httpClient: &http.Client{Timeout: constants.GitHubRequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from GitHub.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// Unwrap lets errors.Is(err, errors.ErrGitHubOperation) match.
func (e *APIError) Unwrap() error {
	return deckerrors.ErrGitHubOperation
}

// doJSON sends payload as JSON and decodes a 2xx response into out.
func (c *Client) doJSON(ctx context.Context, method, url string, authed bool, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// The OAuth endpoints answer form-encoded unless asked for plain JSON.
	accept := "application/json"
	if authed {
		accept = "application/vnd.github+json"
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if c.token == "" {
			return deckerrors.ErrGitHubAuthRequired
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("X-GitHub-Api-Version", constants.GitHubAPIVersion)
	}

	resp, err := c.httpClient.Do(req) //nolint:gosec // URL is built from the configured API root
	if err != nil {
		return fmt.Errorf("github request failed: %w: %w", deckerrors.ErrGitHubOperation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Msg("github request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
