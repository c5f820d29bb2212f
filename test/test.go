package test

import (
	"time"
)

// DefaultTestTimeout bounds environment setup and teardown
const DefaultTestTimeout = 30 * time.Second

// Option represents a configuration option for the test environment
type Option func(*environmentOptions)

type environmentOptions struct {
	timeout   time.Duration
	rateLimit float64
	rateBurst int
	cleanup   func()
}

// WithTimeout returns an option that bounds suite setup and teardown. Requests made by tests
// are bounded by the configured API timeout instead.
func WithTimeout(timeout time.Duration) Option {
	return func(o *environmentOptions) {
		o.timeout = timeout
	}
}

// WithRateLimit returns an option that rate limits registration and establishment creation on
// the stand-in API. It has no effect against a remote API.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *environmentOptions) {
		o.rateLimit = perSecond
		o.rateBurst = burst
	}
}

// WithCleanupFunc returns an option that adds a cleanup function to be
// called when the environment is closed.
func WithCleanupFunc(cleanup func()) Option {
	return func(o *environmentOptions) {
		oldCleanup := o.cleanup
		o.cleanup = func() {
			if cleanup != nil {
				cleanup()
			}
			if oldCleanup != nil {
				oldCleanup()
			}
		}
	}
}
