// Package client provides the HTTP client the suite uses to talk to the POS API
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/logger"
	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// TokenSource yields the bearer token to attach to a request. It is consulted on every call,
// so a token refreshed after the client was built is picked up by the next request.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns the same token
type StaticToken string

// Token implements TokenSource
func (s StaticToken) Token() string {
	return string(s)
}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API, including any version prefix
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration

	// Tokens provides the bearer token. Nil sends unauthenticated requests.
	Tokens TokenSource
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient sends JSON requests to the POS API
type APIClient struct {
	baseURL string
	timeout time.Duration
	tokens  TokenSource
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (*APIClient, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %q needs a scheme and a host", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		timeout: timeout,
		tokens:  opts.Tokens,
	}, nil
}

// BaseURL returns the base URL requests are sent to
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// WithTokens returns a copy of the client that authenticates with ts
func (c *APIClient) WithTokens(ts TokenSource) *APIClient {
	clone := *c
	clone.tokens = ts
	return &clone
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodPatch:
		agent = fiber.Patch(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			agent.Set("Authorization", "Bearer "+token)
		}
	}

	if body != nil {
		agent.JSON(body)
	} else {
		agent.Set("Content-Type", "application/json")
	}

	return agent, nil
}

// Do sends a request and returns the response whatever its status. The error is non-nil only
// when the request could not be built or sent, or the context is already done.
func (c *APIClient) Do(ctx context.Context, method, endpoint string, body interface{}) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	agent.SetResponse(resp)

	start := time.Now()
	statusCode, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("error sending request %s %s: %w", method, endpoint, errs[0])
	}

	out := &Response{
		StatusCode: statusCode,
		Header:     make(http.Header),
		Raw:        raw,
		Body:       UnwrapEnvelope(raw),
	}
	resp.Header.VisitAll(func(k, v []byte) {
		out.Header.Add(string(k), string(v))
	})

	logger.DebugWithFields("api request", map[string]interface{}{
		"method":  method,
		"path":    endpoint,
		"status":  statusCode,
		"latency": time.Since(start).String(),
	})

	return out, nil
}

// Get sends a GET request
func (c *APIClient) Get(ctx context.Context, endpoint string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, endpoint, nil)
}

// Post sends a POST request with a JSON body
func (c *APIClient) Post(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPost, endpoint, body)
}

// Put sends a PUT request with a JSON body
func (c *APIClient) Put(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPut, endpoint, body)
}

// Patch sends a PATCH request with a JSON body
func (c *APIClient) Patch(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, endpoint, body)
}

// Delete sends a DELETE request
func (c *APIClient) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, nil)
}

// executeRequest sends the request and decodes a 2xx body into response. Any other status
// becomes a *fiber.Error carrying the status code.
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	resp, err := c.Do(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return resp.AsError()
	}
	if response != nil && len(resp.Body) > 0 {
		if err := resp.Decode(response); err != nil {
			return err
		}
	}
	return nil
}

// StatusCode returns the HTTP status carried by an error returned from the typed methods,
// or 0 when the error did not come from an HTTP response
func StatusCode(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return 0
}

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (types.HealthResponse, error) {
	var response types.HealthResponse
	err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckURL(), nil, &response)
	return response, err
}

// Register creates a user account
func (c *APIClient) Register(ctx context.Context, req types.RegisterRequest) (types.AuthResponse, error) {
	var response types.AuthResponse
	err := c.executeRequest(ctx, http.MethodPost, routes.RegisterURL(), req, &response)
	return response, err
}

// Login exchanges credentials for tokens
func (c *APIClient) Login(ctx context.Context, req types.LoginRequest) (types.AuthResponse, error) {
	var response types.AuthResponse
	err := c.executeRequest(ctx, http.MethodPost, routes.LoginURL(), req, &response)
	return response, err
}

// RefreshToken exchanges a refresh token for a new token pair
func (c *APIClient) RefreshToken(ctx context.Context, refreshToken string) (types.AuthResponse, error) {
	var response types.AuthResponse
	err := c.executeRequest(ctx, http.MethodPost, routes.RefreshURL(), types.RefreshRequest{RefreshToken: refreshToken}, &response)
	return response, err
}

// Profile returns the authenticated user
func (c *APIClient) Profile(ctx context.Context) (types.User, error) {
	var response types.User
	err := c.executeRequest(ctx, http.MethodGet, routes.ProfileURL(), nil, &response)
	return response, err
}

// CreateEstablishment creates an establishment owned by the authenticated user
func (c *APIClient) CreateEstablishment(ctx context.Context, req types.CreateEstablishmentRequest) (types.Establishment, error) {
	var response types.Establishment
	err := c.executeRequest(ctx, http.MethodPost, routes.EstablishmentsURL(nil), req, &response)
	return response, err
}

// DeleteResource deletes the item at path, e.g. routes.ProductURL(id)
func (c *APIClient) DeleteResource(ctx context.Context, path string) error {
	return c.executeRequest(ctx, http.MethodDelete, path, nil, nil)
}

// decodeJSON is shared by Response helpers
func decodeJSON(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("error decoding response: %w (body: %s)", err, truncate(body, 512))
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
