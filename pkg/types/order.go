package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order types
const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeDelivery = "delivery"
	OrderTypeTakeout  = "takeout"
)

// Order transition actions, the last path segment of PATCH /orders/:id/<action>
const (
	OrderActionConfirm  = "confirm"
	OrderActionPrepare  = "prepare"
	OrderActionReady    = "ready"
	OrderActionComplete = "complete"
	OrderActionCancel   = "cancel"
)

// OrderItem is one line of an order
type OrderItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Notes     string          `json:"notes,omitempty"`
}

// Order is a customer order moving through the kitchen workflow
type Order struct {
	ID                 string          `json:"id"`
	EstablishmentID    string          `json:"establishment_id"`
	CustomerID         string          `json:"customer_id,omitempty"`
	TableID            string          `json:"table_id,omitempty"`
	Type               string          `json:"type"`
	Status             string          `json:"status"`
	Items              []OrderItem     `json:"items"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Discount           decimal.Decimal `json:"discount"`
	Total              decimal.Decimal `json:"total"`
	CouponCode         string          `json:"coupon_code,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// CreateOrderItem is one requested line
type CreateOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// CreateOrderRequest is the body of POST /orders
type CreateOrderRequest struct {
	EstablishmentID string            `json:"establishment_id"`
	CustomerID      string            `json:"customer_id,omitempty"`
	TableID         string            `json:"table_id,omitempty"`
	Type            string            `json:"type"`
	Items           []CreateOrderItem `json:"items"`
	CouponCode      string            `json:"coupon_code,omitempty"`
	Notes           string            `json:"notes,omitempty"`
}

// Validate checks the order payload
func (r CreateOrderRequest) Validate() error {
	if err := required("establishment_id", r.EstablishmentID); err != nil {
		return err
	}
	switch r.Type {
	case OrderTypeDineIn, OrderTypeDelivery, OrderTypeTakeout:
	default:
		return fmt.Errorf("invalid order type: %s", r.Type)
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("order must have at least one item")
	}
	for i, item := range r.Items {
		if item.ProductID == "" {
			return fmt.Errorf("items[%d].product_id is required", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("items[%d].quantity must be positive", i)
		}
	}
	return nil
}

// CancelOrderRequest is the optional body of PATCH /orders/:id/cancel
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// orderTransitions maps an action to the statuses it may start from and the status it leads to
var orderTransitions = map[string]struct {
	from []string
	to   string
}{
	OrderActionConfirm:  {from: []string{OrderStatusPending}, to: OrderStatusConfirmed},
	OrderActionPrepare:  {from: []string{OrderStatusConfirmed}, to: OrderStatusPreparing},
	OrderActionReady:    {from: []string{OrderStatusPreparing}, to: OrderStatusReady},
	OrderActionComplete: {from: []string{OrderStatusReady}, to: OrderStatusCompleted},
	OrderActionCancel: {
		from: []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady},
		to:   OrderStatusCancelled,
	},
}

// NextOrderStatus returns the status an action leads to from the current status
func NextOrderStatus(current, action string) (string, error) {
	t, ok := orderTransitions[action]
	if !ok {
		return "", fmt.Errorf("unknown order action: %s", action)
	}
	for _, from := range t.from {
		if from == current {
			return t.to, nil
		}
	}
	return "", fmt.Errorf("cannot %s an order that is %s", action, current)
}
