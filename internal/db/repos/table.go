package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
)

// TableRepository handles database operations for tables
type TableRepository struct {
	*Repository[models.Table]
}

// NewTableRepository creates a new TableRepository
func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{Repository: NewRepository[models.Table](db)}
}

// GetByQRCode retrieves the table printed with code
func (r *TableRepository) GetByQRCode(ctx context.Context, code string) (*models.Table, error) {
	return r.FindOne(ctx, map[string]interface{}{"qr_code": code})
}
