package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/auth"
	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// UserHandler handles HTTP requests for user operations. Users may only touch their own record.
type UserHandler struct {
	*APIHandler
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(api *APIHandler) *UserHandler {
	return &UserHandler{APIHandler: api}
}

func (h *UserHandler) self(c *fiber.Ctx) (*models.User, error) {
	user, err := h.repos.Users.Get(c.Context(), c.Params("id"))
	if err != nil {
		return nil, storeError("User", err)
	}
	if user.ID != auth.UserID(c) {
		return nil, fiber.NewError(fiber.StatusForbidden, ErrMsgForbidden)
	}
	return user, nil
}

// GetUser returns a user by ID
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.self(c)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, user.ToAPI())
}

// UpdateUser changes the name or phone of a user
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	user, err := h.self(c)
	if err != nil {
		return err
	}
	req, err := parsePatch[types.UpdateUserRequest](c)
	if err != nil {
		return err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
		}
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if err := h.repos.Users.Update(c.Context(), user); err != nil {
		return storeError("User", err)
	}
	return respond(c, fiber.StatusOK, user.ToAPI())
}

// DeleteUser removes a user
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	user, err := h.self(c)
	if err != nil {
		return err
	}
	if err := h.repos.Users.Delete(c.Context(), user.ID); err != nil {
		return storeError("User", err)
	}
	return noContent(c)
}
