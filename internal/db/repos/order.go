package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
)

// OrderRepository handles database operations for orders and their items
type OrderRepository struct {
	*Repository[models.Order]
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{Repository: NewRepository[models.Order](db, "Items")}
}

// UpdateStatus moves an order to status, recording reason for cancellations
func (r *OrderRepository) UpdateStatus(ctx context.Context, order *models.Order, status, reason string) error {
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["cancellation_reason"] = reason
	}
	if err := r.db.WithContext(ctx).Model(order).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

// Delete removes an order together with its items
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&models.Order{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
