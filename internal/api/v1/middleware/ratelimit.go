package middleware

import (
	"math"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	log "github.com/restopos/pos-e2e/internal/logger"
)

// RateLimit answers 429 with a Retry-After header once the limiter's budget is spent.
// One limiter is shared by every caller of the wrapped route.
func RateLimit(limiter *rate.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := limiter.Reserve()
		if !res.OK() {
			return tooManyRequests(c, time.Second)
		}
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			return tooManyRequests(c, delay)
		}
		return c.Next()
	}
}

// NewLimiter creates a limiter allowing perSecond requests with the given burst.
// A non-positive rate returns nil, meaning no limit.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

func tooManyRequests(c *fiber.Ctx, wait time.Duration) error {
	seconds := int(math.Ceil(wait.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
	log.DebugWithFields("Rate limited", map[string]interface{}{
		"path":        c.Path(),
		"retry_after": seconds,
	})
	return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests")
}
