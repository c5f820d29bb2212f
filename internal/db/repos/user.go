package repos

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
)

// UserRepository handles database operations for user entities
type UserRepository struct {
	*Repository[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: NewRepository[models.User](db)}
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.FindOne(ctx, map[string]interface{}{"email": strings.ToLower(email)})
}
