package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

var (
	// ErrSessionAlreadyOpen is returned when an establishment already has an open session
	ErrSessionAlreadyOpen = errors.New("cashier session already open")
	// ErrSessionClosed is returned when closing a session that is not open
	ErrSessionClosed = errors.New("cashier session is not open")
)

// CashierRepository handles database operations for cashier sessions
type CashierRepository struct {
	*Repository[models.CashierSession]
}

// NewCashierRepository creates a new CashierRepository
func NewCashierRepository(db *gorm.DB) *CashierRepository {
	return &CashierRepository{Repository: NewRepository[models.CashierSession](db)}
}

// Current returns the open session of an establishment
func (r *CashierRepository) Current(ctx context.Context, establishmentID string) (*models.CashierSession, error) {
	return r.FindOne(ctx, map[string]interface{}{
		"establishment_id": establishmentID,
		"status":           types.CashierSessionOpen,
	})
}

// Open starts a session unless one is already open for the establishment
func (r *CashierRepository) Open(ctx context.Context, session *models.CashierSession) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		err := tx.Model(&models.CashierSession{}).
			Where("establishment_id = ? AND status = ?", session.EstablishmentID, types.CashierSessionOpen).
			Count(&open).Error
		if err != nil {
			return fmt.Errorf("failed to check open sessions: %w", err)
		}
		if open > 0 {
			return ErrSessionAlreadyOpen
		}
		session.Status = types.CashierSessionOpen
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("failed to open cashier session: %w", err)
		}
		return nil
	})
}

// Close ends an open session with the counted amount
func (r *CashierRepository) Close(ctx context.Context, id string, amount decimal.Decimal) (*models.CashierSession, error) {
	session, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != types.CashierSessionOpen {
		return nil, ErrSessionClosed
	}
	now := time.Now().UTC()
	session.Status = types.CashierSessionClosed
	session.ClosingAmount = &amount
	session.ClosedAt = &now
	if err := r.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
