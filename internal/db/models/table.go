package models

import (
	"github.com/restopos/pos-e2e/pkg/types"
)

// Table is a dine-in table. Number is unique per establishment and the QR code is globally unique.
type Table struct {
	Base
	Number          int    `gorm:"not null;uniqueIndex:idx_table_number"`
	Capacity        int    `gorm:"not null"`
	QRCode          string `gorm:"not null;uniqueIndex"`
	Status          string `gorm:"not null;default:available"`
	EstablishmentID string `gorm:"not null;uniqueIndex:idx_table_number"`
}

// ToAPI converts the model to its wire representation
func (t Table) ToAPI() types.Table {
	return types.Table{
		ID:              t.ID,
		Number:          t.Number,
		Capacity:        t.Capacity,
		QRCode:          t.QRCode,
		Status:          t.Status,
		EstablishmentID: t.EstablishmentID,
		CreatedAt:       t.CreatedAt,
	}
}
