package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Discount types
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is a discount code of one establishment
type Coupon struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	DiscountType    string          `json:"discount_type"`
	DiscountValue   decimal.Decimal `json:"discount_value"`
	MinOrderValue   decimal.Decimal `json:"min_order_value"`
	MaxUses         int             `json:"max_uses"`
	UsedCount       int             `json:"used_count"`
	ValidUntil      *time.Time      `json:"valid_until,omitempty"`
	IsActive        bool            `json:"is_active"`
	EstablishmentID string          `json:"establishment_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateCouponRequest is the body of POST /coupons. MaxUses 0 means unlimited.
type CreateCouponRequest struct {
	Code            string           `json:"code"`
	DiscountType    string           `json:"discount_type"`
	DiscountValue   decimal.Decimal  `json:"discount_value"`
	MinOrderValue   *decimal.Decimal `json:"min_order_value,omitempty"`
	MaxUses         int              `json:"max_uses,omitempty"`
	ValidUntil      *time.Time       `json:"valid_until,omitempty"`
	EstablishmentID string           `json:"establishment_id"`
}

// Validate checks the coupon payload
func (r CreateCouponRequest) Validate() error {
	if err := required("code", r.Code); err != nil {
		return err
	}
	if err := required("establishment_id", r.EstablishmentID); err != nil {
		return err
	}
	if !r.DiscountValue.IsPositive() {
		return fmt.Errorf("discount_value must be positive")
	}
	switch r.DiscountType {
	case DiscountFixed:
	case DiscountPercentage:
		if r.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("percentage discount cannot exceed 100")
		}
	default:
		return fmt.Errorf("invalid discount_type: %s", r.DiscountType)
	}
	if r.MaxUses < 0 {
		return fmt.Errorf("max_uses cannot be negative")
	}
	return nil
}

// UpdateCouponRequest is the body of PATCH /coupons/:id
type UpdateCouponRequest struct {
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	ValidUntil    *time.Time       `json:"valid_until,omitempty"`
}

// ValidateCouponRequest is the body of POST /coupons/validate
type ValidateCouponRequest struct {
	Code            string          `json:"code"`
	EstablishmentID string          `json:"establishment_id"`
	OrderTotal      decimal.Decimal `json:"order_total"`
}

// ValidateCouponResponse reports whether a coupon applies to an order total
type ValidateCouponResponse struct {
	Valid    bool            `json:"valid"`
	Discount decimal.Decimal `json:"discount"`
	Reason   string          `json:"reason,omitempty"`
	Coupon   Coupon          `json:"coupon"`
}

// DiscountFor computes the discount the coupon grants on total, never more than total
func (c Coupon) DiscountFor(total decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		discount = total.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	default:
		discount = c.DiscountValue
	}
	if discount.GreaterThan(total) {
		return total
	}
	return discount
}
