package models

import (
	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/pkg/types"
)

// Establishment is a restaurant owned by a user
type Establishment struct {
	Base
	Name             string `gorm:"not null"`
	CNPJ             string `gorm:"not null;uniqueIndex"`
	Email            string
	Phone            string
	Address          string
	City             string
	State            string
	OwnerID          string `gorm:"index;not null"`
	IsOpen           bool
	DeliveryBaseFee  decimal.Decimal `gorm:"type:decimal(12,2)"`
	DeliveryFeePerKm decimal.Decimal `gorm:"type:decimal(12,2)"`
	DeliveryRadiusKm float64
}

// ToAPI converts the model to its wire representation
func (e Establishment) ToAPI() types.Establishment {
	return types.Establishment{
		ID:               e.ID,
		Name:             e.Name,
		CNPJ:             e.CNPJ,
		Email:            e.Email,
		Phone:            e.Phone,
		Address:          e.Address,
		City:             e.City,
		State:            e.State,
		OwnerID:          e.OwnerID,
		IsOpen:           e.IsOpen,
		DeliveryBaseFee:  e.DeliveryBaseFee,
		DeliveryFeePerKm: e.DeliveryFeePerKm,
		DeliveryRadiusKm: e.DeliveryRadiusKm,
		CreatedAt:        e.CreatedAt,
	}
}
