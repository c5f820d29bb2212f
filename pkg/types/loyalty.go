package types

import (
	"fmt"
	"time"
)

// Loyalty transaction types
const (
	LoyaltyEarn   = "earn"
	LoyaltyRedeem = "redeem"
)

// LoyaltyTransaction records points earned or redeemed by a customer
type LoyaltyTransaction struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	EstablishmentID string    `json:"establishment_id"`
	Type            string    `json:"type"`
	Points          int       `json:"points"`
	OrderID         string    `json:"order_id,omitempty"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// LoyaltyPointsRequest is the body of POST /loyalty/points/earn and /loyalty/points/redeem
type LoyaltyPointsRequest struct {
	CustomerID      string `json:"customer_id"`
	EstablishmentID string `json:"establishment_id"`
	Points          int    `json:"points"`
	OrderID         string `json:"order_id,omitempty"`
	Description     string `json:"description,omitempty"`
}

// Validate checks the points payload
func (r LoyaltyPointsRequest) Validate() error {
	if err := required("customer_id", r.CustomerID); err != nil {
		return err
	}
	if err := required("establishment_id", r.EstablishmentID); err != nil {
		return err
	}
	if r.Points <= 0 {
		return fmt.Errorf("points must be positive")
	}
	return nil
}

// LoyaltyBalance is returned by GET /loyalty/customers/:customerId/balance
type LoyaltyBalance struct {
	CustomerID      string `json:"customer_id"`
	EstablishmentID string `json:"establishment_id"`
	Points          int    `json:"points"`
}
