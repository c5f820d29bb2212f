package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DeliveryFeeRequest is the body of POST /delivery/calculate-fee
type DeliveryFeeRequest struct {
	EstablishmentID string  `json:"establishment_id"`
	DistanceKm      float64 `json:"distance_km"`
}

// Validate checks the fee request
func (r DeliveryFeeRequest) Validate() error {
	if err := required("establishment_id", r.EstablishmentID); err != nil {
		return err
	}
	if r.DistanceKm <= 0 {
		return fmt.Errorf("distance_km must be positive")
	}
	return nil
}

// DeliveryFeeResponse is the computed fee for a distance
type DeliveryFeeResponse struct {
	EstablishmentID  string          `json:"establishment_id"`
	DistanceKm       float64         `json:"distance_km"`
	Fee              decimal.Decimal `json:"fee"`
	EstimatedMinutes int             `json:"estimated_minutes"`
}
