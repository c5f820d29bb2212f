package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	if opts.DSN == "" {
		opts.DSN = filepath.Join(t.TempDir(), "pos.db")
	}
	if opts.JWTSecret == "" {
		opts.JWTSecret = "app-test-secret"
	}
	a, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func do(t *testing.T, a *App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, routes.APIv1Prefix+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.Fiber.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var env types.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, resp.StatusCode, env.StatusCode)
	assert.False(t, env.Timestamp.IsZero())
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func register(t *testing.T, a *App, email string) *http.Response {
	return do(t, a, http.MethodPost, routes.RegisterURL(), "", types.RegisterRequest{
		Name:     "App Test",
		Email:    email,
		Password: "Password123!",
	})
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New(Options{DSN: filepath.Join(t.TempDir(), "pos.db")})
	assert.Error(t, err)
}

func TestEveryRouteIsMounted(t *testing.T) {
	a := newTestApp(t, Options{})
	for _, r := range routes.All() {
		mounted := a.Fiber.GetRoute(r.Name)
		assert.Equal(t, r.Name, mounted.Name, "route %s", r.Name)
		assert.Equal(t, routes.APIv1Prefix+r.Path, mounted.Path, "route %s", r.Name)
	}
}

func TestHealth(t *testing.T) {
	a := newTestApp(t, Options{})
	resp := do(t, a, http.MethodGet, routes.HealthCheckURL(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeEnvelope[types.HealthResponse](t, resp).Status)
}

func TestErrorShape(t *testing.T) {
	a := newTestApp(t, Options{})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"protected route without token", http.MethodGet, routes.ProfileURL(), http.StatusUnauthorized},
		{"unknown path", http.MethodGet, "/nowhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, a, tt.method, tt.path, "", nil)
			defer resp.Body.Close()
			require.Equal(t, tt.want, resp.StatusCode)

			var body types.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.want, body.StatusCode)
			assert.NotEmpty(t, body.Message)
			assert.Equal(t, http.StatusText(tt.want), body.Error)
		})
	}
}

func TestRegisterThenProfile(t *testing.T) {
	a := newTestApp(t, Options{})

	resp := register(t, a, "app@test.com")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	auth := decodeEnvelope[types.AuthResponse](t, resp)
	require.NotEmpty(t, auth.AccessToken)
	require.NotEmpty(t, auth.RefreshToken)

	resp = do(t, a, http.MethodGet, routes.ProfileURL(), auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeEnvelope[types.User](t, resp)
	assert.Equal(t, auth.User.ID, user.ID)
	assert.Equal(t, "app@test.com", user.Email)
}

func TestRateLimit(t *testing.T) {
	// One request every 10s per limited route
	a := newTestApp(t, Options{RateLimit: 0.1, RateBurst: 1})

	resp := register(t, a, "first@test.com")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = register(t, a, "second@test.com")
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "10", resp.Header.Get("Retry-After"))

	// establishment creation has a budget of its own, spent before authentication
	resp = do(t, a, http.MethodPost, routes.EstablishmentsURL(nil), "", types.CreateEstablishmentRequest{})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = do(t, a, http.MethodPost, routes.EstablishmentsURL(nil), "", types.CreateEstablishmentRequest{})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	// login is never limited
	for range 3 {
		resp = do(t, a, http.MethodPost, routes.LoginURL(), "", types.LoginRequest{Email: "first@test.com", Password: "Password123!"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestCloseIsSafeAfterUse(t *testing.T) {
	a, err := New(Options{DSN: filepath.Join(t.TempDir(), "pos.db"), JWTSecret: "s"})
	require.NoError(t, err)
	resp := do(t, a, http.MethodGet, routes.HealthCheckURL(), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, a.Close())
}
