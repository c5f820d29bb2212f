package types

import (
	"fmt"
	"time"
)

// Stock movement types. An adjustment sets the absolute quantity.
const (
	StockIn         = "in"
	StockOut        = "out"
	StockAdjustment = "adjustment"
)

// StockMovement changes the on-hand quantity of a product
type StockMovement struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateStockMovementRequest is the body of POST /stock/movements
type CreateStockMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// Validate checks the movement payload
func (r CreateStockMovementRequest) Validate() error {
	if err := required("product_id", r.ProductID); err != nil {
		return err
	}
	switch r.Type {
	case StockIn, StockOut:
		if r.Quantity <= 0 {
			return fmt.Errorf("quantity must be positive")
		}
	case StockAdjustment:
		if r.Quantity < 0 {
			return fmt.Errorf("quantity cannot be negative")
		}
	default:
		return fmt.Errorf("invalid movement type: %s", r.Type)
	}
	return nil
}

// StockLevel is returned by GET /stock/products/:productId
type StockLevel struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
