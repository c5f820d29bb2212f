package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/pkg/types"
)

// Coupon is a discount code. Code is unique per establishment.
type Coupon struct {
	Base
	Code            string          `gorm:"not null;uniqueIndex:idx_coupon_code"`
	DiscountType    string          `gorm:"not null"`
	DiscountValue   decimal.Decimal `gorm:"type:decimal(12,2)"`
	MinOrderValue   decimal.Decimal `gorm:"type:decimal(12,2)"`
	MaxUses         int
	UsedCount       int
	ValidUntil      *time.Time
	IsActive        bool
	EstablishmentID string `gorm:"not null;uniqueIndex:idx_coupon_code"`
}

// ToAPI converts the model to its wire representation
func (c Coupon) ToAPI() types.Coupon {
	return types.Coupon{
		ID:              c.ID,
		Code:            c.Code,
		DiscountType:    c.DiscountType,
		DiscountValue:   c.DiscountValue,
		MinOrderValue:   c.MinOrderValue,
		MaxUses:         c.MaxUses,
		UsedCount:       c.UsedCount,
		ValidUntil:      c.ValidUntil,
		IsActive:        c.IsActive,
		EstablishmentID: c.EstablishmentID,
		CreatedAt:       c.CreatedAt,
	}
}

// Applicable reports whether the coupon can be used on an order of the given total at now.
// The returned string explains a refusal.
func (c Coupon) Applicable(total decimal.Decimal, now time.Time) (bool, string) {
	switch {
	case !c.IsActive:
		return false, "coupon is inactive"
	case c.ValidUntil != nil && now.After(*c.ValidUntil):
		return false, "coupon has expired"
	case c.MaxUses > 0 && c.UsedCount >= c.MaxUses:
		return false, "coupon usage limit reached"
	case total.LessThan(c.MinOrderValue):
		return false, "order total below coupon minimum"
	}
	return true, ""
}
