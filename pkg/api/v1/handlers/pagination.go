package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/db/models"
)

// getPaginationOptions reads page and limit query parameters into ListOptions.
// Limits above models.MaxLimit are clamped.
func getPaginationOptions(c *fiber.Ctx) (*models.ListOptions, error) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, ErrMsgNegativePagination)
	}
	limit := c.QueryInt("limit", models.DefaultLimit)
	if limit < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidLimit)
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}

	return &models.ListOptions{
		Limit:   limit,
		Offset:  (page - 1) * limit,
		Filters: map[string]interface{}{},
	}, nil
}
