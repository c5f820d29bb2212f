package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/internal/db/repos"
	"github.com/restopos/pos-e2e/pkg/types"
)

// LoyaltyHandler handles HTTP requests for loyalty points
type LoyaltyHandler struct {
	*APIHandler
}

// NewLoyaltyHandler creates a new LoyaltyHandler instance
func NewLoyaltyHandler(api *APIHandler) *LoyaltyHandler {
	return &LoyaltyHandler{APIHandler: api}
}

// customerOf checks the customer exists in an establishment of the caller
func (h *LoyaltyHandler) customerOf(c *fiber.Ctx, customerID, establishmentID string) error {
	if _, err := h.ownedEstablishment(c, establishmentID); err != nil {
		return err
	}
	customer, err := h.repos.Customers.Get(c.Context(), customerID)
	if err != nil {
		return storeError("Customer", err)
	}
	if customer.EstablishmentID != establishmentID {
		return fiber.NewError(fiber.StatusNotFound, "Customer not found")
	}
	return nil
}

// EarnPoints credits points to a customer
func (h *LoyaltyHandler) EarnPoints(c *fiber.Ctx) error {
	return h.record(c, types.LoyaltyEarn)
}

// RedeemPoints debits points from a customer. Redeeming more than the balance is a 400.
func (h *LoyaltyHandler) RedeemPoints(c *fiber.Ctx) error {
	return h.record(c, types.LoyaltyRedeem)
}

func (h *LoyaltyHandler) record(c *fiber.Ctx, kind string) error {
	req, err := parseBody[types.LoyaltyPointsRequest](c)
	if err != nil {
		return err
	}
	if err := h.customerOf(c, req.CustomerID, req.EstablishmentID); err != nil {
		return err
	}

	txn := &models.LoyaltyTransaction{
		CustomerID:      req.CustomerID,
		EstablishmentID: req.EstablishmentID,
		Type:            kind,
		Points:          req.Points,
		OrderID:         req.OrderID,
		Description:     req.Description,
	}
	if _, err := h.repos.Loyalty.Record(c.Context(), txn); err != nil {
		if errors.Is(err, repos.ErrInsufficientPoints) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	return respond(c, fiber.StatusCreated, txn.ToAPI())
}

// Balance returns the points of a customer at an establishment
func (h *LoyaltyHandler) Balance(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	establishmentID := c.Query("establishment_id")
	if err := h.customerOf(c, customerID, establishmentID); err != nil {
		return err
	}

	points, err := h.repos.Loyalty.Balance(c.Context(), customerID, establishmentID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, types.LoyaltyBalance{
		CustomerID:      customerID,
		EstablishmentID: establishmentID,
		Points:          points,
	})
}
