// Package todoclient is a typed Go client for the todo REST API.
package todoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Todo mirrors the API's todo record.
type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Health is the /health response.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// CreateRequest is the body of a create call.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateRequest is a partial update. Nil fields are not sent.
type UpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todo api: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to a single API instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// New creates a Client for the API at baseURL, e.g. "http://localhost:5001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Count   int    `json:"count"`
	Error   string `json:"error"`
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// List returns every todo in insertion order.
func (c *Client) List(ctx context.Context) ([]Todo, error) {
	return c.list(ctx, "/api/todos")
}

// ListCompleted returns the completed todos.
func (c *Client) ListCompleted(ctx context.Context) ([]Todo, error) {
	return c.list(ctx, "/api/todos/status/completed")
}

// ListPending returns the todos not yet completed.
func (c *Client) ListPending(ctx context.Context) ([]Todo, error) {
	return c.list(ctx, "/api/todos/status/pending")
}

// Get returns the todo with the given id.
func (c *Client) Get(ctx context.Context, id int64) (*Todo, error) {
	return c.one(ctx, http.MethodGet, todoPath(id), nil)
}

// Create adds a todo.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Todo, error) {
	return c.one(ctx, http.MethodPost, "/api/todos", req)
}

// Update applies a partial update.
func (c *Client) Update(ctx context.Context, id int64, req UpdateRequest) (*Todo, error) {
	return c.one(ctx, http.MethodPut, todoPath(id), req)
}

// Delete removes a todo and returns the removed record.
func (c *Client) Delete(ctx context.Context, id int64) (*Todo, error) {
	return c.one(ctx, http.MethodDelete, todoPath(id), nil)
}

func (c *Client) list(ctx context.Context, path string) ([]Todo, error) {
	var env envelope[[]Todo]
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		env.Data = []Todo{}
	}
	return env.Data, nil
}

func (c *Client) one(ctx context.Context, method, path string, body any) (*Todo, error) {
	var env envelope[Todo]
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env envelope[json.RawMessage]
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&env); err == nil && env.Error != "" {
		apiErr.Message = env.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func todoPath(id int64) string {
	return "/api/todos/" + strconv.FormatInt(id, 10)
}
