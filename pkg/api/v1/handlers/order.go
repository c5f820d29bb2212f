package handlers

import (
	"strings"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/internal/logger"
	"github.com/restopos/pos-e2e/pkg/types"
)

// OrderHandler handles HTTP requests for orders and their workflow
type OrderHandler struct {
	*APIHandler
}

// NewOrderHandler creates a new OrderHandler instance
func NewOrderHandler(api *APIHandler) *OrderHandler {
	return &OrderHandler{APIHandler: api}
}

func (h *OrderHandler) order(c *fiber.Ctx) (*models.Order, error) {
	return scopedGet(h.APIHandler, c, "Order",
		func(id string) (*models.Order, error) { return h.repos.Orders.Get(c.Context(), id) },
		func(m *models.Order) string { return m.EstablishmentID })
}

// ListOrders lists the orders of an establishment, optionally filtered by status
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	opts, err := h.scopedFilters(c)
	if err != nil {
		return err
	}
	if status := c.Query("status"); status != "" {
		opts.Filters["status"] = status
	}
	items, total, err := h.repos.Orders.List(c.Context(), opts)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.Order.ToAPI)
}

// GetOrder returns one order with its items
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.order(c)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, order.ToAPI())
}

// CreateOrder prices the requested items, applies an optional coupon and stores a pending order
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	req, err := parseBody[types.CreateOrderRequest](c)
	if err != nil {
		return err
	}
	if _, err := h.ownedEstablishment(c, req.EstablishmentID); err != nil {
		return err
	}
	if err := h.checkReferences(c, req); err != nil {
		return err
	}

	order := &models.Order{
		EstablishmentID: req.EstablishmentID,
		CustomerID:      req.CustomerID,
		TableID:         req.TableID,
		Type:            req.Type,
		Status:          types.OrderStatusPending,
		Notes:           req.Notes,
	}
	for _, item := range req.Items {
		product, err := h.repos.Products.Get(c.Context(), item.ProductID)
		if err != nil {
			return storeError("Product", err)
		}
		if product.EstablishmentID != req.EstablishmentID {
			return fiber.NewError(fiber.StatusBadRequest, "product belongs to another establishment")
		}
		if !product.IsAvailable {
			return fiber.NewError(fiber.StatusBadRequest, "product "+product.Name+" is unavailable")
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.Items = append(order.Items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Subtotal:  subtotal,
			Notes:     item.Notes,
		})
		order.Subtotal = order.Subtotal.Add(subtotal)
	}

	var coupon *models.Coupon
	if req.CouponCode != "" {
		coupon, err = h.repos.Coupons.GetByCode(c.Context(), req.EstablishmentID, strings.ToUpper(req.CouponCode))
		if err != nil {
			return storeError("Coupon", err)
		}
		if ok, reason := coupon.Applicable(order.Subtotal, h.now()); !ok {
			return fiber.NewError(fiber.StatusBadRequest, reason)
		}
		order.CouponCode = coupon.Code
		order.Discount = coupon.ToAPI().DiscountFor(order.Subtotal)
	}
	order.Total = order.Subtotal.Sub(order.Discount)

	if err := h.repos.Orders.Create(c.Context(), order); err != nil {
		return storeError("Order", err)
	}
	if coupon != nil {
		if err := h.repos.Coupons.IncrementUsage(c.Context(), coupon.ID); err != nil {
			logger.Warnf("order %s: %v", order.ID, err)
		}
	}
	return respond(c, fiber.StatusCreated, order.ToAPI())
}

// checkReferences verifies the optional customer and table belong to the order's establishment
func (h *OrderHandler) checkReferences(c *fiber.Ctx, req types.CreateOrderRequest) error {
	if req.CustomerID != "" {
		customer, err := h.repos.Customers.Get(c.Context(), req.CustomerID)
		if err != nil {
			return storeError("Customer", err)
		}
		if customer.EstablishmentID != req.EstablishmentID {
			return fiber.NewError(fiber.StatusBadRequest, "customer belongs to another establishment")
		}
	}
	if req.TableID != "" {
		table, err := h.repos.Tables.Get(c.Context(), req.TableID)
		if err != nil {
			return storeError("Table", err)
		}
		if table.EstablishmentID != req.EstablishmentID {
			return fiber.NewError(fiber.StatusBadRequest, "table belongs to another establishment")
		}
	}
	if req.Type == types.OrderTypeDineIn && req.TableID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "table_id is required for dine_in orders")
	}
	return nil
}

// TransitionOrder moves an order along pending, confirmed, preparing, ready, completed.
// Any step out of order, and cancelling a completed or cancelled order, is a 400.
func (h *OrderHandler) TransitionOrder(c *fiber.Ctx) error {
	order, err := h.order(c)
	if err != nil {
		return err
	}
	action := c.Params("action")

	next, err := types.NextOrderStatus(order.Status, action)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var reason string
	if action == types.OrderActionCancel && len(c.Body()) > 0 {
		var req types.CancelOrderRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqBody)
		}
		reason = req.Reason
	}

	if err := h.repos.Orders.UpdateStatus(c.Context(), order, next, reason); err != nil {
		return storeError("Order", err)
	}
	order.Status = next
	if reason != "" {
		order.CancellationReason = reason
	}
	return respond(c, fiber.StatusOK, order.ToAPI())
}

// DeleteOrder removes an order
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	order, err := h.order(c)
	if err != nil {
		return err
	}
	if err := h.repos.Orders.Delete(c.Context(), order.ID); err != nil {
		return storeError("Order", err)
	}
	return noContent(c)
}
