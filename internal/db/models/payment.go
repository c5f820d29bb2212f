package models

import (
	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/pkg/types"
)

// Payment settles all or part of an order
type Payment struct {
	Base
	OrderID string          `gorm:"index;not null"`
	Method  string          `gorm:"not null"`
	Amount  decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status  string          `gorm:"not null"`
}

// ToAPI converts the model to its wire representation
func (p Payment) ToAPI() types.Payment {
	return types.Payment{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Method:    p.Method,
		Amount:    p.Amount,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
