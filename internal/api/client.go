// Package api is the HTTP facade over the RooHerbals DMS service.
// Every operation performs a single attempt and decodes the response
// envelope; resubmission after a failure is the caller's concern.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token for outgoing requests. An
// empty token is a valid state: the request goes out unauthenticated
// and the server decides.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

// Observer records the outcome of a completed request. Satisfied by
// observability.Metrics.
type Observer interface {
	ObserveRequest(endpoint string, status int, elapsed time.Duration)
}

// Options configures optional client collaborators.
type Options struct {
	HTTPClient Doer
	Tokens     TokenSource
	Limiter    *rate.Limiter
	Logger     *slog.Logger
	Observer   Observer
}

// Client talks to the DMS API.
type Client struct {
	baseURL  string
	http     Doer
	tokens   TokenSource
	limiter  *rate.Limiter
	logger   *slog.Logger
	observer Observer
	validate *validator.Validate
}

// New builds a client for the API rooted at baseURL.
func New(baseURL string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		tokens:   opts.Tokens,
		limiter:  opts.Limiter,
		logger:   logger,
		observer: opts.Observer,
		validate: validator.New(),
	}
}

func (c *Client) get(ctx context.Context, path, rawQuery string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, rawQuery, nil)
}

// do performs one request and returns the unwrapped payload. A failure
// status maps to *APIError; anything before a status maps to
// *TransportError.
func (c *Client) do(ctx context.Context, method, path, rawQuery string, body any) (json.RawMessage, error) {
	endpoint := method + " " + path
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Op: endpoint, Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Op: endpoint, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &TransportError{Op: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, &TransportError{Op: endpoint, Err: err}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if c.observer != nil {
		c.observer.ObserveRequest(endpoint, resp.StatusCode, time.Since(start))
	}
	if err != nil {
		return nil, &TransportError{Op: endpoint, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
		c.logger.Warn("request rejected",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message))
		return nil, apiErr
	}
	if len(raw) == 0 {
		return nil, nil
	}
	payload, err := unwrap(raw)
	if err != nil {
		return nil, &TransportError{Op: endpoint, Err: err}
	}
	return payload, nil
}

// unwrap returns the payload inside a {data: ...} envelope, or the
// body itself when no envelope is present. Both shapes are in use
// across endpoints and must be indistinguishable to callers.
func unwrap(raw []byte) (json.RawMessage, error) {
	var probe json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return env.Data, nil
	}
	return probe, nil
}

// errorMessage extracts the server's message from an error body,
// falling back to a generic message when the body lacks one.
func errorMessage(raw []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return genericMessage
}
