package handlers

import (
	"errors"
	"net/http"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/repos"
	"github.com/restopos/pos-e2e/internal/logger"
	"github.com/restopos/pos-e2e/pkg/types"
)

// Common error messages
const (
	ErrMsgInvalidReqBody       = "Invalid request body"
	ErrMsgEstablishmentIDReqd  = "establishment_id is required"
	ErrMsgInvalidCredentials   = "Invalid credentials"
	ErrMsgEmailTaken           = "Email already registered"
	ErrMsgRefreshTokenRequired = "refresh_token is required"
	ErrMsgInvalidRefreshToken  = "Invalid refresh token"
	ErrMsgForbidden            = "You do not have access to this resource"
	ErrMsgInternal             = "Internal server error"
)

// Pagination error messages
const (
	ErrMsgNegativePagination = "page must be a positive number from 1"
	ErrMsgInvalidLimit       = "limit must be a positive number"
)

// storeError converts a repository error into an HTTP error naming the resource
func storeError(resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repos.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, resource+" not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.NewError(fiber.StatusConflict, resource+" already exists")
	}
	return err
}

// ErrorHandler renders every error as {statusCode, message, error}.
// Errors that are not *fiber.Error become a 500 and are logged.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := ErrMsgInternal

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		logger.ErrorWithFields("Unhandled error", map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
			"error":  err.Error(),
		})
	}

	return c.Status(code).JSON(types.ErrorResponse{
		StatusCode: code,
		Message:    message,
		Error:      http.StatusText(code),
	})
}
