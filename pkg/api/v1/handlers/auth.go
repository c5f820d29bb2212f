package handlers

import (
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/auth"
	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// AuthHandler handles registration, login and token refresh
type AuthHandler struct {
	*APIHandler
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(api *APIHandler) *AuthHandler {
	return &AuthHandler{APIHandler: api}
}

// Register creates an account and returns its first token pair
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	req, err := parseBody[types.RegisterRequest](c)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		Phone:        req.Phone,
		PasswordHash: hash,
	}
	if err := h.repos.Users.Create(c.Context(), user); err != nil {
		if fe := storeError("User", err); isStatus(fe, fiber.StatusConflict) {
			return fiber.NewError(fiber.StatusConflict, ErrMsgEmailTaken)
		}
		return err
	}

	return h.issue(c, fiber.StatusCreated, user)
}

// Login exchanges credentials for a token pair
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, err := parseBody[types.LoginRequest](c)
	if err != nil {
		return err
	}

	user, err := h.repos.Users.GetByEmail(c.Context(), req.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, ErrMsgInvalidCredentials)
	}
	return h.issue(c, fiber.StatusOK, user)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req types.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	if req.RefreshToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgRefreshTokenRequired)
	}

	claims, err := h.issuer.Parse(req.RefreshToken, auth.KindRefresh)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, ErrMsgInvalidRefreshToken)
	}
	user, err := h.repos.Users.Get(c.Context(), claims.Subject)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, ErrMsgInvalidRefreshToken)
	}
	return h.issue(c, fiber.StatusOK, user)
}

// Profile returns the authenticated user
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.repos.Users.Get(c.Context(), auth.UserID(c))
	if err != nil {
		return storeError("User", err)
	}
	return respond(c, fiber.StatusOK, user.ToAPI())
}

func (h *AuthHandler) issue(c *fiber.Ctx, status int, user *models.User) error {
	pair, err := h.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return err
	}
	return respond(c, status, types.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.ToAPI(),
	})
}

// isStatus reports whether err is a *fiber.Error with the given code
func isStatus(err error, code int) bool {
	fe, ok := err.(*fiber.Error)
	return ok && fe.Code == code
}
