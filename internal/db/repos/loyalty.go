package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// ErrInsufficientPoints is returned when a redemption exceeds the balance
var ErrInsufficientPoints = errors.New("insufficient loyalty points")

// LoyaltyRepository handles database operations for loyalty points
type LoyaltyRepository struct {
	*Repository[models.LoyaltyTransaction]
}

// NewLoyaltyRepository creates a new LoyaltyRepository
func NewLoyaltyRepository(db *gorm.DB) *LoyaltyRepository {
	return &LoyaltyRepository{Repository: NewRepository[models.LoyaltyTransaction](db)}
}

// Balance sums the points of a customer at an establishment
func (r *LoyaltyRepository) Balance(ctx context.Context, customerID, establishmentID string) (int, error) {
	return balance(r.db.WithContext(ctx), customerID, establishmentID)
}

// Record stores a transaction, refusing redemptions the balance cannot cover.
// It returns the balance after the transaction.
func (r *LoyaltyRepository) Record(ctx context.Context, txn *models.LoyaltyTransaction) (int, error) {
	var after int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := balance(tx, txn.CustomerID, txn.EstablishmentID)
		if err != nil {
			return err
		}
		if txn.Type == types.LoyaltyRedeem && txn.Points > current {
			return fmt.Errorf("%w: have %d, need %d", ErrInsufficientPoints, current, txn.Points)
		}
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("failed to record loyalty transaction: %w", err)
		}
		after = current + txn.Signed()
		return nil
	})
	return after, err
}

func balance(db *gorm.DB, customerID, establishmentID string) (int, error) {
	var txns []models.LoyaltyTransaction
	err := db.Where("customer_id = ? AND establishment_id = ?", customerID, establishmentID).
		Find(&txns).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load loyalty transactions: %w", err)
	}
	total := 0
	for _, t := range txns {
		total += t.Signed()
	}
	return total, nil
}
