package handlers

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// envelope is the success wrapper of single-resource responses
type envelope struct {
	Data       interface{} `json:"data"`
	StatusCode int         `json:"statusCode"`
	Timestamp  time.Time   `json:"timestamp"`
}

// respond writes data inside the success envelope
func respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(envelope{
		Data:       data,
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	})
}

// respondList writes a page of items converted with toAPI. List responses are not enveloped.
func respondList[M any, T any](c *fiber.Ctx, items []M, total int64, opts *models.ListOptions, toAPI func(M) T) error {
	data := make([]T, 0, len(items))
	for _, item := range items {
		data = append(data, toAPI(item))
	}
	return c.Status(fiber.StatusOK).JSON(types.ListResponse[T]{
		Data:  data,
		Page:  opts.Page(),
		Limit: opts.Limit,
		Total: total,
	})
}

// noContent answers a successful delete
func noContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// validator is implemented by every request body in pkg/types
type validator interface {
	Validate() error
}

// parseBody decodes and validates a JSON body, answering 400 on either failure
func parseBody[T validator](c *fiber.Ctx) (T, error) {
	var req T
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	if err := req.Validate(); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return req, nil
}

// parsePatch decodes a partial-update body
func parsePatch[T any](c *fiber.Ctx) (T, error) {
	var req T
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	return req, nil
}
