package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods
const (
	PaymentMethodCash       = "cash"
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
	PaymentMethodPix        = "pix"
)

// Payment statuses
const (
	PaymentStatusApproved = "approved"
	PaymentStatusRefunded = "refunded"
)

// Payment settles all or part of an order
type Payment struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreatePaymentRequest is the body of POST /payments
type CreatePaymentRequest struct {
	OrderID string          `json:"order_id"`
	Method  string          `json:"method"`
	Amount  decimal.Decimal `json:"amount"`
}

// Validate checks the payment payload
func (r CreatePaymentRequest) Validate() error {
	if err := required("order_id", r.OrderID); err != nil {
		return err
	}
	switch r.Method {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix:
	default:
		return fmt.Errorf("invalid payment method: %s", r.Method)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
