package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Establishment is a restaurant or store owned by a user
type Establishment struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	CNPJ             string          `json:"cnpj"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Address          string          `json:"address,omitempty"`
	City             string          `json:"city,omitempty"`
	State            string          `json:"state,omitempty"`
	OwnerID          string          `json:"owner_id"`
	IsOpen           bool            `json:"is_open"`
	DeliveryBaseFee  decimal.Decimal `json:"delivery_base_fee"`
	DeliveryFeePerKm decimal.Decimal `json:"delivery_fee_per_km"`
	DeliveryRadiusKm float64         `json:"delivery_radius_km"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CreateEstablishmentRequest is the body of POST /establishments
type CreateEstablishmentRequest struct {
	Name             string           `json:"name"`
	CNPJ             string           `json:"cnpj"`
	Email            string           `json:"email,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	Address          string           `json:"address,omitempty"`
	City             string           `json:"city,omitempty"`
	State            string           `json:"state,omitempty"`
	DeliveryBaseFee  *decimal.Decimal `json:"delivery_base_fee,omitempty"`
	DeliveryFeePerKm *decimal.Decimal `json:"delivery_fee_per_km,omitempty"`
	DeliveryRadiusKm float64          `json:"delivery_radius_km,omitempty"`
}

// Validate checks the establishment payload
func (r CreateEstablishmentRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	if err := ValidateCNPJ(r.CNPJ); err != nil {
		return err
	}
	if r.Email != "" {
		if err := ValidateEmail(r.Email); err != nil {
			return err
		}
	}
	if r.DeliveryRadiusKm < 0 {
		return fmt.Errorf("delivery_radius_km cannot be negative")
	}
	return nil
}

// UpdateEstablishmentRequest is the body of PATCH /establishments/:id
type UpdateEstablishmentRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	IsOpen  *bool   `json:"is_open,omitempty"`
}
