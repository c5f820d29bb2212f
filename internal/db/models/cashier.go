package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/pkg/types"
)

// CashierSession is one shift of a cash register
type CashierSession struct {
	Base
	EstablishmentID string           `gorm:"index;not null"`
	OpenedBy        string           `gorm:"not null"`
	Status          string           `gorm:"index;not null"`
	OpeningAmount   decimal.Decimal  `gorm:"type:decimal(12,2)"`
	ClosingAmount   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ClosedAt        *time.Time
}

// ToAPI converts the model to its wire representation
func (s CashierSession) ToAPI() types.CashierSession {
	return types.CashierSession{
		ID:              s.ID,
		EstablishmentID: s.EstablishmentID,
		OpenedBy:        s.OpenedBy,
		Status:          s.Status,
		OpeningAmount:   s.OpeningAmount,
		ClosingAmount:   s.ClosingAmount,
		OpenedAt:        s.CreatedAt,
		ClosedAt:        s.ClosedAt,
	}
}
