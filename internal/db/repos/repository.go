// Package repos provides database repository implementations
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/restopos/pos-e2e/internal/db/models"
)

// ErrNotFound is returned when no row matches the lookup
var ErrNotFound = errors.New("record not found")

// defaultOrder keeps pages stable across calls
const defaultOrder = "created_at DESC, id"

// Repository implements the CRUD operations shared by every model
type Repository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewRepository creates a repository for T. Associations named in preloads are loaded on reads.
func NewRepository[T any](db *gorm.DB, preloads ...string) *Repository[T] {
	return &Repository[T]{db: db, preloads: preloads}
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// Create inserts entity. Unique violations come back as gorm.ErrDuplicatedKey.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create: %w", err)
	}
	return nil
}

// Get retrieves an entity by ID
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, map[string]interface{}{"id": id})
}

// FindOne retrieves the first entity matching all conditions
func (r *Repository[T]) FindOne(ctx context.Context, conds map[string]interface{}) (*T, error) {
	var entity T
	err := r.query(ctx).Where(conds).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get: %w", err)
	}
	return &entity, nil
}

// List returns one page of entities matching opts.Filters and the total number of matches
func (r *Repository[T]) List(ctx context.Context, opts *models.ListOptions) ([]T, int64, error) {
	if opts == nil {
		opts = &models.ListOptions{Limit: models.DefaultLimit}
	}

	var total int64
	count := r.db.WithContext(ctx).Model(new(T))
	if len(opts.Filters) > 0 {
		count = count.Where(opts.Filters)
	}
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count: %w", err)
	}

	order := opts.OrderBy
	if order == "" {
		order = defaultOrder
	}
	items := make([]T, 0)
	q := r.query(ctx)
	if len(opts.Filters) > 0 {
		q = q.Where(opts.Filters)
	}
	err := q.Order(order).Limit(opts.Limit).Offset(opts.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list: %w", err)
	}
	return items, total, nil
}

// Update saves every field of entity
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}
	return nil
}

// Delete removes the entity with the given ID, returning ErrNotFound when there is none
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("failed to delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Repositories groups the repository of every model
type Repositories struct {
	Users          *UserRepository
	Establishments *Repository[models.Establishment]
	Categories     *Repository[models.Category]
	Products       *Repository[models.Product]
	Customers      *Repository[models.Customer]
	Tables         *TableRepository
	Coupons        *CouponRepository
	Orders         *OrderRepository
	Payments       *Repository[models.Payment]
	Loyalty        *LoyaltyRepository
	Stock          *StockRepository
	Cashier        *CashierRepository
}

// New creates every repository on top of db
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(db),
		Establishments: NewRepository[models.Establishment](db),
		Categories:     NewRepository[models.Category](db),
		Products:       NewRepository[models.Product](db),
		Customers:      NewRepository[models.Customer](db),
		Tables:         NewTableRepository(db),
		Coupons:        NewCouponRepository(db),
		Orders:         NewOrderRepository(db),
		Payments:       NewRepository[models.Payment](db),
		Loyalty:        NewLoyaltyRepository(db),
		Stock:          NewStockRepository(db),
		Cashier:        NewCashierRepository(db),
	}
}
