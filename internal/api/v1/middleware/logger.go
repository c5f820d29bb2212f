// Package middleware provides fiber middleware of the stand-in POS API
package middleware

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	log "github.com/restopos/pos-e2e/internal/logger"
)

// Logger returns a middleware that logs HTTP requests at debug level
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continue chain
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not run yet; report the status it will write
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		log.DebugWithFields("Request", map[string]interface{}{
			"status":  status,
			"latency": time.Since(start),
			"method":  c.Method(),
			"path":    c.Path(),
			"handler": c.Route().Name,
		})

		return err
	}
}
