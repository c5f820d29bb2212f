package models

import (
	"github.com/restopos/pos-e2e/pkg/types"
)

// LoyaltyTransaction records points earned or redeemed
type LoyaltyTransaction struct {
	Base
	CustomerID      string `gorm:"index:idx_loyalty_owner;not null"`
	EstablishmentID string `gorm:"index:idx_loyalty_owner;not null"`
	Type            string `gorm:"not null"`
	Points          int    `gorm:"not null"`
	OrderID         string
	Description     string
}

// Signed returns the points with redemptions negative
func (l LoyaltyTransaction) Signed() int {
	if l.Type == types.LoyaltyRedeem {
		return -l.Points
	}
	return l.Points
}

// ToAPI converts the model to its wire representation
func (l LoyaltyTransaction) ToAPI() types.LoyaltyTransaction {
	return types.LoyaltyTransaction{
		ID:              l.ID,
		CustomerID:      l.CustomerID,
		EstablishmentID: l.EstablishmentID,
		Type:            l.Type,
		Points:          l.Points,
		OrderID:         l.OrderID,
		Description:     l.Description,
		CreatedAt:       l.CreatedAt,
	}
}
