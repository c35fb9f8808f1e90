// Package api provides the HTTP client for the portfolio backend. Every
// response travels in a uniform envelope {status, data, message}; this
// package unwraps it, injects the bearer token, and normalizes failures
// into *Error values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for outgoing requests and is told
// to evict the session when the backend answers 401.
type TokenSource interface {
	Token() string
	Evict()
}

// envelope is the uniform response wrapper applied by the backend.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client talks to the portfolio backend. It performs no retries: a failed
// request is surfaced once to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  zerolog.Logger
}

// Options configures client construction.
type Options struct {
	Timeout time.Duration
	Tokens  TokenSource
	Logger  zerolog.Logger
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:8080/api". A nil TokenSource means all requests go out
// unauthenticated.
func NewClient(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  opts.Tokens,
		logger:  opts.Logger,
	}
}

// do executes one request against the backend and returns the unwrapped
// envelope data and message. Any failure comes back as *Error. A 401
// response evicts the session as a side effect before the error is
// returned.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, string, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, "", &Error{Message: "failed to encode request body", Cause: err}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, "", &Error{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return nil, "", &Error{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &Error{Message: "failed to read response body", Cause: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("request complete")

	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
		// Forced logout. The caller still receives the error below.
		c.tokens.Evict()
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return nil, "", &Error{
					StatusCode: resp.StatusCode,
					Message:    http.StatusText(resp.StatusCode),
				}
			}
			return nil, "", &Error{Message: "malformed response envelope", Cause: err}
		}
	}

	// Non-2xx and status:"error" are both failures regardless of each other.
	if resp.StatusCode < 200 || resp.StatusCode > 299 || env.Status == "error" {
		return nil, "", &Error{
			StatusCode: resp.StatusCode,
			Message:    envelopeMessage(env, resp.StatusCode),
			Fields:     decodeFieldDetail(env.Data),
		}
	}

	return env.Data, env.Message, nil
}

// envelopeMessage picks the server message, falling back to the HTTP status
// text when the envelope carries none.
func envelopeMessage(env envelope, statusCode int) string {
	if env.Message != "" {
		return env.Message
	}
	return http.StatusText(statusCode)
}

// decodeFieldDetail extracts field-level validation detail when the error
// payload is a flat object of field -> message. Anything else is ignored.
func decodeFieldDetail(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return nil
	}
	return fields
}

// getJSON fetches path and decodes the envelope data into T.
func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	data, _, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &Error{Message: fmt.Sprintf("failed to decode %s response", path), Cause: err}
	}
	return out, nil
}

// create posts a record to a resource path and decodes the server's
// canonical representation of it.
func create[T any](ctx context.Context, c *Client, path string, record T) (T, error) {
	var out T
	data, _, err := c.do(ctx, http.MethodPost, path, record)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &Error{Message: fmt.Sprintf("failed to decode %s response", path), Cause: err}
	}
	return out, nil
}

// update puts a record at path/id and decodes the server's canonical
// representation of it.
func update[T any](ctx context.Context, c *Client, path, id string, record T) (T, error) {
	var out T
	data, _, err := c.do(ctx, http.MethodPut, path+"/"+id, record)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &Error{Message: fmt.Sprintf("failed to decode %s response", path), Cause: err}
	}
	return out, nil
}

// remove deletes the record at path/id.
func (c *Client) remove(ctx context.Context, path, id string) error {
	_, _, err := c.do(ctx, http.MethodDelete, path+"/"+id, nil)
	return err
}
