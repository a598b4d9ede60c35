// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api is the typed client for the Veracity backend admin REST API.
// All reads and writes performed by the console go through this package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// requestTimeout bounds every backend call. A stalled backend request
// fails the page instead of hanging its loading state forever.
const requestTimeout = 15 * time.Second

// Error is the structured error body returned by the backend on non-2xx
// responses. Message is surfaced verbatim in forms and dialogs.
type Error struct {
	Message    string `json:"message"`
	ErrorKind  string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether the backend rejected the session.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// ErrNoSession is returned when an authenticated call is made without
// a backend session token in the context.
var ErrNoSession = errors.New("no backend session in context")

// contextKey is a private type for context keys set by this package.
type contextKey string

// sessionContextKey carries the backend session token for the current
// admin through the request context.
const sessionContextKey contextKey = "backend_session"

// WithSession returns a context carrying the backend session token.
// Middleware sets it once per request; every API call forwards it.
func WithSession(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionContextKey, token)
}

// SessionFromContext retrieves the backend session token, or "".
func SessionFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionContextKey).(string)
	return token
}

// Client issues JSON requests against the backend admin API.
type Client struct {
	baseURL    string
	cookieName string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	// BaseURL is the backend API root, e.g. "https://api.veracity.example".
	BaseURL string
	// SessionCookie is the name of the backend's session cookie.
	SessionCookie string
	// Timeout overrides the default request timeout when > 0.
	Timeout time.Duration
}

// NewClient creates a backend API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		cookieName: cfg.SessionCookie,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Login posts credentials and returns the backend session token issued
// via Set-Cookie. The token is stored in the admin's console session and
// forwarded on every subsequent call.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/auth/login", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("backend login request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", parseAPIError(resp)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == c.cookieName {
			return cookie.Value, nil
		}
	}
	return "", fmt.Errorf("backend login response missing %q cookie", c.cookieName)
}

// do builds and executes a request, forwarding the session cookie from
// context and decoding the JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := SessionFromContext(ctx); token != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// parseAPIError reads a non-2xx response into an *Error. When the body
// is not the expected JSON shape, a generic message is used so the
// status code is never lost.
func parseAPIError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(body) > 0 {
		var parsed Error
		if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil && parsed.Message != "" {
			parsed.StatusCode = resp.StatusCode
			return &parsed
		}
	}

	apiErr.Message = "Request failed with status " + strconv.Itoa(resp.StatusCode)
	return apiErr
}

// queryString encodes params, skipping empty values, and prefixes "?"
// when anything was set.
func queryString(params url.Values) string {
	filtered := make(url.Values)
	for key, values := range params {
		for _, v := range values {
			if v != "" {
				filtered.Add(key, v)
			}
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	return "?" + filtered.Encode()
}
