package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
)

// StockRepository handles stock movements and the quantity they leave on each product
type StockRepository struct {
	*Repository[models.StockMovement]
}

// NewStockRepository creates a new StockRepository
func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{Repository: NewRepository[models.StockMovement](db)}
}

// ApplyMovement records the movement and updates the product quantity atomically.
// It returns the quantity after the movement, or models.ErrInsufficientStock.
func (r *StockRepository) ApplyMovement(ctx context.Context, movement *models.StockMovement) (int, error) {
	var after int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.Where("id = ?", movement.ProductID).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load product: %w", err)
		}

		after, err = movement.Apply(product.StockQuantity)
		if err != nil {
			return err
		}
		if err := tx.Model(&product).Update("stock_quantity", after).Error; err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}
		if err := tx.Create(movement).Error; err != nil {
			return fmt.Errorf("failed to record stock movement: %w", err)
		}
		return nil
	})
	return after, err
}

// Level returns the quantity on hand of a product
func (r *StockRepository) Level(ctx context.Context, productID string) (int, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Select("stock_quantity").Where("id = ?", productID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get stock level: %w", err)
	}
	return product.StockQuantity, nil
}
