// Package rest implements the driven.Backend port against the RAG
// service's JSON/HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Backend = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000/api"
	DefaultPreset  = "predefined"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the REST client.
type Config struct {
	// BaseURL is the API root (default: http://localhost:8000/api).
	BaseURL string

	// Preset is the path segment of the predefined-set endpoint
	// /admin/stores/{preset}/create-all (default: predefined).
	Preset string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// Logger receives request diagnostics.
	Logger zerolog.Logger
}

// Client talks to the backend. Every call is fresh: no retries, no
// caching, no shared state beyond the underlying connection pool.
// All errors it returns carry messages suitable for direct display.
type Client struct {
	http    *http.Client
	baseURL string
	preset  string
	log     zerolog.Logger
}

// NewClient creates a REST backend client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Preset == "" {
		cfg.Preset = DefaultPreset
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		preset:  cfg.Preset,
		log:     cfg.Logger,
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchDomains lists the domains available for chat.
func (c *Client) FetchDomains(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	if err := c.getJSON(ctx, "fetch domains", "/domains", &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// SendMessage submits a chat message scoped to a domain.
func (c *Client) SendMessage(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	var resp domain.ChatResponse
	if err := c.postJSON(ctx, "chat request", "/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Welcome fetches the global greeting payload.
func (c *Client) Welcome(ctx context.Context) (*domain.Welcome, error) {
	var welcome domain.Welcome
	if err := c.getJSON(ctx, "fetch welcome", "/welcome", &welcome); err != nil {
		return nil, err
	}
	return &welcome, nil
}

// Suggestions fetches AI-generated questions for a domain.
func (c *Client) Suggestions(ctx context.Context, domainID string) ([]string, error) {
	var resp struct {
		Domain      string   `json:"domain"`
		Suggestions []string `json:"suggestions"`
	}
	path := "/suggestions/" + url.PathEscape(domainID)
	if err := c.getJSON(ctx, "fetch suggestions", path, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// getJSON performs a GET and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, action, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &domain.NetworkError{Action: action, Err: err}
	}
	return c.do(action, req, out)
}

// postJSON performs a POST with an optional JSON body and decodes the
// JSON response body.
func (c *Client) postJSON(ctx context.Context, action, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return &domain.NetworkError{Action: action, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(action, req, out)
}

// delete performs a DELETE; a 2xx response with any body is success.
func (c *Client) deleteReq(ctx context.Context, action, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return &domain.NetworkError{Action: action, Err: err}
	}
	return c.do(action, req, nil)
}

// do sends the request, translating failures into displayable errors.
func (c *Client) do(action string, req *http.Request, out any) error {
	c.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("backend request")

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Action: action, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(action, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.NetworkError{Action: action, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeError turns a non-2xx response into a BackendError. The body is
// best-effort parsed for a JSON "detail" field; when present it becomes
// the displayed message, otherwise a generic status-based one is used.
func (c *Client) decodeError(action string, resp *http.Response) error {
	backendErr := &domain.BackendError{
		Action:     action,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil {
			backendErr.Detail = payload.Detail
		}
	}

	c.log.Warn().
		Str("action", action).
		Int("status", resp.StatusCode).
		Str("detail", backendErr.Detail).
		Msg("backend error")
	return backendErr
}
