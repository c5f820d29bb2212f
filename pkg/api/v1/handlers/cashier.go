package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/auth"
	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/internal/db/repos"
	"github.com/restopos/pos-e2e/pkg/types"
)

// CashierHandler handles HTTP requests for cashier sessions
type CashierHandler struct {
	*APIHandler
}

// NewCashierHandler creates a new CashierHandler instance
func NewCashierHandler(api *APIHandler) *CashierHandler {
	return &CashierHandler{APIHandler: api}
}

// OpenSession opens a cashier session. Only one session per establishment may be open.
func (h *CashierHandler) OpenSession(c *fiber.Ctx) error {
	req, err := parseBody[types.OpenCashierSessionRequest](c)
	if err != nil {
		return err
	}
	if _, err := h.ownedEstablishment(c, req.EstablishmentID); err != nil {
		return err
	}

	session := &models.CashierSession{
		EstablishmentID: req.EstablishmentID,
		OpenedBy:        auth.UserID(c),
		OpeningAmount:   req.OpeningAmount,
	}
	if err := h.repos.Cashier.Open(c.Context(), session); err != nil {
		if errors.Is(err, repos.ErrSessionAlreadyOpen) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}
	return respond(c, fiber.StatusCreated, session.ToAPI())
}

// CloseSession closes an open session. Closing a closed session is a 400.
func (h *CashierHandler) CloseSession(c *fiber.Ctx) error {
	session, err := scopedGet(h.APIHandler, c, "Cashier session",
		func(id string) (*models.CashierSession, error) { return h.repos.Cashier.Get(c.Context(), id) },
		func(m *models.CashierSession) string { return m.EstablishmentID })
	if err != nil {
		return err
	}
	req, err := parseBody[types.CloseCashierSessionRequest](c)
	if err != nil {
		return err
	}

	closed, err := h.repos.Cashier.Close(c.Context(), session.ID, req.ClosingAmount)
	if err != nil {
		if errors.Is(err, repos.ErrSessionClosed) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return storeError("Cashier session", err)
	}
	return respond(c, fiber.StatusOK, closed.ToAPI())
}

// CurrentSession returns the open session of an establishment, or 404 when none is open
func (h *CashierHandler) CurrentSession(c *fiber.Ctx) error {
	est, err := h.ownedEstablishment(c, c.Query("establishment_id"))
	if err != nil {
		return err
	}
	session, err := h.repos.Cashier.Current(c.Context(), est.ID)
	if err != nil {
		return storeError("Open cashier session", err)
	}
	return respond(c, fiber.StatusOK, session.ToAPI())
}
