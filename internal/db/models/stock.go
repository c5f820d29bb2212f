package models

import (
	"errors"
	"fmt"

	"github.com/restopos/pos-e2e/pkg/types"
)

// StockMovement changes the on-hand quantity of a product
type StockMovement struct {
	Base
	ProductID string `gorm:"index;not null"`
	Type      string `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
	Reason    string
}

// ErrInsufficientStock is returned when an outbound movement exceeds the quantity on hand
var ErrInsufficientStock = errors.New("insufficient stock")

// Apply returns the quantity after the movement is applied to current
func (m StockMovement) Apply(current int) (int, error) {
	switch m.Type {
	case types.StockIn:
		return current + m.Quantity, nil
	case types.StockOut:
		if m.Quantity > current {
			return current, fmt.Errorf("%w: have %d, need %d", ErrInsufficientStock, current, m.Quantity)
		}
		return current - m.Quantity, nil
	case types.StockAdjustment:
		return m.Quantity, nil
	}
	return current, fmt.Errorf("invalid movement type: %s", m.Type)
}

// ToAPI converts the model to its wire representation
func (m StockMovement) ToAPI() types.StockMovement {
	return types.StockMovement{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}
