// Package client is a typed Go SDK for the portfolio HTTP API. It wraps
// every resource endpoint, threads context through each call and persists
// the admin session to a local file between runs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrNoSession    = errors.New("no active session, login first")
)

// APIError is a non-2xx response. It unwraps to ErrUnauthorized or
// ErrNotFound for the status codes callers inspect narrowly.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL     string
	httpClient  *http.Client
	sessionPath string
	session     *Session
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithSessionFile overrides where the admin session is persisted.
func WithSessionFile(path string) Option {
	return func(c *Client) {
		c.sessionPath = path
	}
}

// New builds a client for the API at baseURL (e.g. "http://localhost:8080").
// An existing session file is loaded if present, so a previously logged-in
// admin stays authenticated across runs.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sessionPath == "" {
		path, err := defaultSessionPath()
		if err != nil {
			return nil, fmt.Errorf("resolving session path: %w", err)
		}

		c.sessionPath = path
	}

	session, err := loadSession(c.sessionPath)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	c.session = session

	return c, nil
}

// Session returns the current admin session, or nil when logged out.
func (c *Client) Session() *Session {
	return c.session
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
	Message *string         `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		reader = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + "/api" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		if c.session == nil {
			return ErrNoSession
		}

		req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	env := envelope{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := http.StatusText(resp.StatusCode)

		switch {
		case env.Error != nil:
			message = *env.Error
		case env.Message != nil:
			message = *env.Message
		}

		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	if env.Data == nil {
		return fmt.Errorf("decoding response: missing data field")
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}

	return nil
}
