package test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/restopos/pos-e2e/config"
	"github.com/restopos/pos-e2e/internal/app"
	"github.com/restopos/pos-e2e/internal/logger"
	"github.com/restopos/pos-e2e/pkg/api/v1/client"
	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
)

// Environment is the API a test run talks to. With POS_API_URL set it points at that
// deployment; otherwise it hosts the stand-in API in process:
//   - SQLite database in a temporary directory
//   - Real fiber application served through httptest
type Environment struct {
	Config  *config.Config
	BaseURL string

	// Set only for the stand-in
	App    *app.App
	Server *httptest.Server

	ctx          context.Context
	cancelFunc   context.CancelFunc
	cleanup      func()
	setupTimeout time.Duration
}

// NewEnvironment connects to the configured API or starts the stand-in.
// The environment must be closed after use by calling Close.
func NewEnvironment(cfg *config.Config, opts ...Option) (*Environment, error) {
	o := environmentOptions{timeout: DefaultTestTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	logger.SetLevel(cfg.LogLevel)

	env := &Environment{Config: cfg, cleanup: o.cleanup, setupTimeout: o.timeout}
	env.ctx, env.cancelFunc = context.WithCancel(context.Background())

	if !cfg.UseStandIn() {
		env.BaseURL = strings.TrimRight(cfg.APIURL, "/")
		logger.Debugf("using API at %s", env.BaseURL)
		return env, nil
	}

	if err := env.startStandIn(o); err != nil {
		env.Close()
		return nil, err
	}
	logger.Debugf("using stand-in API at %s", env.BaseURL)
	return env, nil
}

func (e *Environment) startStandIn(o environmentOptions) error {
	dir, err := os.MkdirTemp("", "pos-e2e-*")
	if err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	e.addCleanup(func() { _ = os.RemoveAll(dir) })

	a, err := app.New(app.Options{
		DSN:       filepath.Join(dir, "pos.db"),
		JWTSecret: e.Config.JWTSecret,
		RateLimit: o.rateLimit,
		RateBurst: o.rateBurst,
	})
	if err != nil {
		return fmt.Errorf("failed to start stand-in API: %w", err)
	}
	e.App = a
	e.addCleanup(func() { _ = a.Close() })

	// Create test server using adaptor to convert Fiber app to http.Handler
	e.Server = httptest.NewServer(adaptor.FiberApp(a.Fiber))
	e.addCleanup(e.Server.Close)
	e.BaseURL = e.Server.URL + routes.APIv1Prefix
	return nil
}

// addCleanup runs fn before the cleanups registered earlier
func (e *Environment) addCleanup(fn func()) {
	previous := e.cleanup
	e.cleanup = func() {
		fn()
		if previous != nil {
			previous()
		}
	}
}

// IsStandIn reports whether the environment hosts the stand-in API
func (e *Environment) IsStandIn() bool {
	return e.App != nil
}

// NewClient returns an unauthenticated client for the environment's API
func (e *Environment) NewClient() (*client.APIClient, error) {
	return client.NewClient(&client.Options{
		BaseURL: e.BaseURL,
		Timeout: e.Config.Timeout,
	})
}

// NewSession returns an unauthenticated session using the configured password and retry policy
func (e *Environment) NewSession(opts ...SessionOption) (*Session, error) {
	api, err := e.NewClient()
	if err != nil {
		return nil, err
	}
	defaults := []SessionOption{
		WithPassword(e.Config.TestPassword),
		WithRetryPolicy(RetryPolicyFromConfig(e.Config)),
	}
	return NewSession(api, append(defaults, opts...)...), nil
}

// Context returns the environment's context. It has no deadline and is canceled when the
// environment is closed.
func (e *Environment) Context() context.Context {
	return e.ctx
}

// SetupContext derives a context bounded by the setup timeout (WithTimeout, default
// DefaultTestTimeout) for suite setup and teardown
func (e *Environment) SetupContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(e.ctx, e.setupTimeout)
}

// TestContext derives a context for one test, bounded by the configured API timeout
// (POS_API_TIMEOUT), or DefaultTestTimeout when none is set
func (e *Environment) TestContext() (context.Context, context.CancelFunc) {
	timeout := e.Config.Timeout
	if timeout <= 0 {
		timeout = DefaultTestTimeout
	}
	return context.WithTimeout(e.ctx, timeout)
}

// Close tears down the environment, releasing all resources
func (e *Environment) Close() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	if e.cancelFunc != nil {
		e.cancelFunc()
	}
}
