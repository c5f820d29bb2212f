package test

import (
	"context"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/restopos/pos-e2e/config"
	"github.com/restopos/pos-e2e/internal/logger"
	"github.com/restopos/pos-e2e/pkg/api/v1/client"
)

// RetryPolicy controls how rate-limited (429) requests are retried
type RetryPolicy struct {
	// Attempts is the total number of calls, the first one included
	Attempts int
	// Initial is the delay after the first 429
	Initial time.Duration
	// Multiplier grows the delay after every further 429
	Multiplier float64
	// MaxDelay caps every delay, Retry-After included
	MaxDelay time.Duration
	// Jitter is the fraction of the delay added or removed at random, 0.2 meaning ±20%
	Jitter float64
	// Deadline bounds the whole loop; zero leaves only the context deadline
	Deadline time.Duration

	sleep  func(ctx context.Context, d time.Duration) error
	random func() float64
}

// DefaultRetryPolicy waits 2s, 4s, 8s... capped at 10s, over at most 3 attempts and 30s
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:   config.DefaultRetryAttempts,
		Initial:    config.DefaultRetryDelay,
		Multiplier: 2,
		MaxDelay:   config.DefaultRetryMaxDelay,
		Jitter:     0.2,
		Deadline:   config.DefaultTimeout,
	}
}

// FixedRetryPolicy waits a flat 2s between at most 3 attempts, with no growth or jitter
func FixedRetryPolicy() RetryPolicy {
	p := DefaultRetryPolicy()
	p.Multiplier = 1
	p.Jitter = 0
	return p
}

// RetryPolicyFromConfig builds the default policy with the attempts and delays of cfg
func RetryPolicyFromConfig(cfg *config.Config) RetryPolicy {
	p := DefaultRetryPolicy()
	p.Attempts = cfg.RetryAttempts
	p.Initial = cfg.RetryDelay
	p.MaxDelay = cfg.RetryMaxDelay
	p.Deadline = cfg.Timeout
	return p
}

// Delay returns the wait after the given zero-based failed attempt
func (p RetryPolicy) Delay(attempt int) time.Duration {
	multiplier := p.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	d := float64(p.Initial) * math.Pow(multiplier, float64(attempt))
	if p.Jitter > 0 {
		random := p.random
		if random == nil {
			random = rand.Float64
		}
		d += d * p.Jitter * (2*random() - 1)
	}
	return p.clamp(time.Duration(d))
}

func (p RetryPolicy) clamp(d time.Duration) time.Duration {
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	if d < 0 {
		return 0
	}
	return d
}

// RetryOnRateLimit calls fn until it answers something other than 429 or the attempts run
// out, in which case the last 429 response is returned without error. A transport error from
// fn is returned at once. The wait honours Retry-After when the server sends one. If the next
// wait would overrun the policy deadline, the last response is returned instead of waiting.
func RetryOnRateLimit(ctx context.Context, p RetryPolicy, fn func(ctx context.Context) (*client.Response, error)) (*client.Response, error) {
	if p.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Deadline)
		defer cancel()
	}
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	for attempt := 0; ; attempt++ {
		resp, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt+1 >= attempts {
			return resp, nil
		}

		wait := p.Delay(attempt)
		if retryAfter := resp.RetryAfter(); retryAfter > 0 {
			wait = p.clamp(retryAfter)
		}
		if deadline, ok := ctx.Deadline(); ok && time.Now().Add(wait).After(deadline) {
			logger.Warnf("rate limited, next wait of %s would pass the deadline", wait)
			return resp, nil
		}

		logger.WarnWithFields("rate limited, retrying", map[string]interface{}{
			"attempt": attempt + 1,
			"of":      attempts,
			"wait":    wait.String(),
		})
		if err := sleep(ctx, wait); err != nil {
			return resp, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
