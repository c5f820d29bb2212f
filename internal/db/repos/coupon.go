package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
)

// CouponRepository handles database operations for coupons
type CouponRepository struct {
	*Repository[models.Coupon]
}

// NewCouponRepository creates a new CouponRepository
func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{Repository: NewRepository[models.Coupon](db)}
}

// GetByCode retrieves a coupon of an establishment by its code
func (r *CouponRepository) GetByCode(ctx context.Context, establishmentID, code string) (*models.Coupon, error) {
	return r.FindOne(ctx, map[string]interface{}{
		"establishment_id": establishmentID,
		"code":             code,
	})
}

// IncrementUsage counts one more use of the coupon
func (r *CouponRepository) IncrementUsage(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&models.Coupon{}).Where("id = ?", id).
		Update("used_count", gorm.Expr("used_count + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("failed to increment coupon usage: %w", err)
	}
	return nil
}
