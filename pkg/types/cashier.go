package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Cashier session statuses
const (
	CashierSessionOpen   = "open"
	CashierSessionClosed = "closed"
)

// CashierSession is one shift of a cash register
type CashierSession struct {
	ID              string           `json:"id"`
	EstablishmentID string           `json:"establishment_id"`
	OpenedBy        string           `json:"opened_by"`
	Status          string           `json:"status"`
	OpeningAmount   decimal.Decimal  `json:"opening_amount"`
	ClosingAmount   *decimal.Decimal `json:"closing_amount,omitempty"`
	OpenedAt        time.Time        `json:"opened_at"`
	ClosedAt        *time.Time       `json:"closed_at,omitempty"`
}

// OpenCashierSessionRequest is the body of POST /cashier/sessions/open
type OpenCashierSessionRequest struct {
	EstablishmentID string          `json:"establishment_id"`
	OpeningAmount   decimal.Decimal `json:"opening_amount"`
}

// Validate checks the opening payload
func (r OpenCashierSessionRequest) Validate() error {
	if err := required("establishment_id", r.EstablishmentID); err != nil {
		return err
	}
	if r.OpeningAmount.IsNegative() {
		return fmt.Errorf("opening_amount cannot be negative")
	}
	return nil
}

// CloseCashierSessionRequest is the body of POST /cashier/sessions/:id/close
type CloseCashierSessionRequest struct {
	ClosingAmount decimal.Decimal `json:"closing_amount"`
}

// Validate checks the closing payload
func (r CloseCashierSessionRequest) Validate() error {
	if r.ClosingAmount.IsNegative() {
		return fmt.Errorf("closing_amount cannot be negative")
	}
	return nil
}
