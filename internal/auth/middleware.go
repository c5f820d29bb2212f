package auth

import (
	"strings"

	fiber "github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth
const (
	LocalUserID = "user_id"
	LocalEmail  = "user_email"
)

// RequireAuth rejects requests without a valid "Authorization: Bearer <access token>" header
func RequireAuth(issuer *Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := issuer.Parse(strings.TrimSpace(token), KindAccess)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// UserID returns the authenticated user's ID, or "" outside RequireAuth
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}
