package handlers

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	*APIHandler
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(api *APIHandler) *PaymentHandler {
	return &PaymentHandler{APIHandler: api}
}

// ownedOrder loads an order of one of the caller's establishments
func (h *PaymentHandler) ownedOrder(c *fiber.Ctx, id string) (*models.Order, error) {
	order, err := h.repos.Orders.Get(c.Context(), id)
	if err != nil {
		return nil, storeError("Order", err)
	}
	if _, err := h.ownedEstablishment(c, order.EstablishmentID); err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Order not found")
	}
	return order, nil
}

func (h *PaymentHandler) orderPayments(c *fiber.Ctx, orderID string) ([]models.Payment, int64, *models.ListOptions, error) {
	opts := &models.ListOptions{
		Limit:   models.MaxLimit,
		Filters: map[string]interface{}{"order_id": orderID},
		OrderBy: "created_at",
	}
	items, total, err := h.repos.Payments.List(c.Context(), opts)
	return items, total, opts, err
}

// CreatePayment records a payment against an order. The amount may not exceed what is still owed.
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	req, err := parseBody[types.CreatePaymentRequest](c)
	if err != nil {
		return err
	}
	order, err := h.ownedOrder(c, req.OrderID)
	if err != nil {
		return err
	}
	if order.Status == types.OrderStatusCancelled {
		return fiber.NewError(fiber.StatusBadRequest, "cannot pay a cancelled order")
	}

	existing, _, _, err := h.orderPayments(c, order.ID)
	if err != nil {
		return err
	}
	paid := decimal.Zero
	for _, p := range existing {
		if p.Status == types.PaymentStatusApproved {
			paid = paid.Add(p.Amount)
		}
	}
	if paid.Add(req.Amount).GreaterThan(order.Total) {
		return fiber.NewError(fiber.StatusBadRequest, "amount exceeds the outstanding balance of "+order.Total.Sub(paid).StringFixed(2))
	}

	payment := &models.Payment{
		OrderID: order.ID,
		Method:  req.Method,
		Amount:  req.Amount,
		Status:  types.PaymentStatusApproved,
	}
	if err := h.repos.Payments.Create(c.Context(), payment); err != nil {
		return storeError("Payment", err)
	}
	return respond(c, fiber.StatusCreated, payment.ToAPI())
}

// GetPayment returns one payment
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	payment, err := h.repos.Payments.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError("Payment", err)
	}
	if _, err := h.ownedOrder(c, payment.OrderID); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Payment not found")
	}
	return respond(c, fiber.StatusOK, payment.ToAPI())
}

// ListOrderPayments lists the payments of an order, oldest first
func (h *PaymentHandler) ListOrderPayments(c *fiber.Ctx) error {
	order, err := h.ownedOrder(c, c.Params("orderId"))
	if err != nil {
		return err
	}
	items, total, opts, err := h.orderPayments(c, order.ID)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.Payment.ToAPI)
}
