// Package client provides unit tests for the POS API client.
//
// The tests use httptest to create a mock server, allowing the client to be tested without
// requiring an actual API server.
package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopos/pos-e2e/pkg/types"
)

// mutableToken is a TokenSource whose value can change between calls
type mutableToken struct {
	mu    sync.Mutex
	value string
}

func (m *mutableToken) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

func (m *mutableToken) set(v string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = v
}

// TestNewClient tests the NewClient function with various configurations
func TestNewClient(t *testing.T) {
	tests := []struct {
		name       string
		opts       *Options
		wantErr    bool
		validateFn func(t *testing.T, c *APIClient)
	}{
		{
			name: "nil options",
			opts: nil,
			validateFn: func(t *testing.T, c *APIClient) {
				expected := DefaultOptions()
				assert.Equal(t, expected.BaseURL, c.baseURL)
				assert.Equal(t, expected.Timeout, c.timeout)
			},
		},
		{
			name: "trailing slash trimmed and zero timeout defaulted",
			opts: &Options{BaseURL: "http://example.com/api/v1/"},
			validateFn: func(t *testing.T, c *APIClient) {
				assert.Equal(t, "http://example.com/api/v1", c.BaseURL())
				assert.Equal(t, DefaultTimeout, c.timeout)
			},
		},
		{
			name:    "invalid base URL",
			opts:    &Options{BaseURL: "://invalid-url"},
			wantErr: true,
		},
		{
			name:    "missing host",
			opts:    &Options{BaseURL: "/api/v1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			if tt.validateFn != nil {
				tt.validateFn(t, c)
			}
		})
	}
}

// setupTestServer simulates the POS API:
// - /enveloped: a {data, statusCode, timestamp} envelope
// - /list: a plain list response
// - /whoami: echoes the Authorization header
// - /limited: 429 with Retry-After
// - /products/p1: 204 on DELETE
// - /auth/register: 409 with an error body
func setupTestServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/enveloped":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"data":{"id":"p1","name":"X-Burger"},"statusCode":200,"timestamp":"2024-01-01T00:00:00Z"}`))
		case "/list":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"data":[{"id":"p1"}],"page":1,"limit":10,"total":1}`))
		case "/whoami":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"authorization":"` + r.Header.Get("Authorization") + `"}`))
		case "/limited":
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"statusCode":429,"message":"Too many requests","error":"Too Many Requests"}`))
		case "/products/p1":
			if r.Method != http.MethodDelete {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		case "/auth/register":
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"statusCode":409,"message":"email already registered","error":"Conflict"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestClient(t *testing.T, baseURL string, ts TokenSource) *APIClient {
	t.Helper()
	c, err := NewClient(&Options{BaseURL: baseURL, Timeout: 5 * time.Second, Tokens: ts})
	require.NoError(t, err)
	return c
}

func TestAPIClient_Do(t *testing.T) {
	server := setupTestServer()
	defer server.Close()
	c := newTestClient(t, server.URL, nil)
	ctx := context.Background()

	t.Run("envelope is unwrapped", func(t *testing.T) {
		resp, err := c.Get(ctx, "/enveloped")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var p types.Product
		require.NoError(t, resp.Decode(&p))
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "X-Burger", p.Name)
	})

	t.Run("list response is left intact", func(t *testing.T) {
		resp, err := c.Get(ctx, "/list")
		require.NoError(t, err)

		var list types.ListResponse[types.Product]
		require.NoError(t, resp.Decode(&list))
		assert.Len(t, list.Data, 1)
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 10, list.Limit)
		assert.EqualValues(t, 1, list.Total)
	})

	t.Run("error status is not a Go error", func(t *testing.T) {
		resp, err := c.Get(ctx, "/limited")
		require.NoError(t, err)
		assert.False(t, resp.IsSuccess())
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, 3*time.Second, resp.RetryAfter())
		assert.Equal(t, "Too many requests", resp.ErrorBody().Message)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := c.Get(cctx, "/list")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unsupported method", func(t *testing.T) {
		_, err := c.Do(ctx, "TRACE", "/list", nil)
		assert.Error(t, err)
	})
}

func TestAPIClient_TokenReadPerCall(t *testing.T) {
	server := setupTestServer()
	defer server.Close()

	tokens := &mutableToken{}
	c := newTestClient(t, server.URL, tokens)
	ctx := context.Background()

	resp, err := c.Get(ctx, "/whoami")
	require.NoError(t, err)
	assert.Equal(t, "", resp.JSON()["authorization"], "no header without a token")

	tokens.set("first")
	resp, err = c.Get(ctx, "/whoami")
	require.NoError(t, err)
	assert.Equal(t, "Bearer first", resp.JSON()["authorization"])

	// The same client picks up a refreshed token
	tokens.set("second")
	resp, err = c.Get(ctx, "/whoami")
	require.NoError(t, err)
	assert.Equal(t, "Bearer second", resp.JSON()["authorization"])

	static := c.WithTokens(StaticToken("fixed"))
	resp, err = static.Get(ctx, "/whoami")
	require.NoError(t, err)
	assert.Equal(t, "Bearer fixed", resp.JSON()["authorization"])
}

func TestAPIClient_TypedErrors(t *testing.T) {
	server := setupTestServer()
	defer server.Close()
	c := newTestClient(t, server.URL, nil)

	_, err := c.Register(context.Background(), types.RegisterRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, StatusCode(err))
	assert.Contains(t, err.Error(), "email already registered")

	assert.Equal(t, 0, StatusCode(context.Canceled))
}

func TestAPIClient_DeleteResource(t *testing.T) {
	server := setupTestServer()
	defer server.Close()
	c := newTestClient(t, server.URL, nil)
	ctx := context.Background()

	require.NoError(t, c.DeleteResource(ctx, "/products/p1"))

	err := c.DeleteResource(ctx, "/products/p2")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "envelope", body: `{"data":{"a":1},"statusCode":201,"timestamp":"t"}`, want: `{"a":1}`},
		{name: "envelope with array", body: `{"data":[1,2],"statusCode":200,"timestamp":"t"}`, want: `[1,2]`},
		{name: "list response", body: `{"data":[],"page":1,"limit":10,"total":0}`, want: `{"data":[],"page":1,"limit":10,"total":0}`},
		{name: "plain object", body: `{"id":"x"}`, want: `{"id":"x"}`},
		{name: "array", body: `[1]`, want: `[1]`},
		{name: "empty", body: ``, want: ``},
		{name: "not json", body: `oops`, want: `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(UnwrapEnvelope([]byte(tt.body))))
		})
	}
}
