// Package db provides database connectivity for the stand-in POS API
package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/restopos/pos-e2e/internal/db/models"
)

// DefaultDSN keeps the database in memory, shared by all connections of the process
const DefaultDSN = "file::memory:?cache=shared"

// Options represents database connection configuration options
type Options struct {
	// DSN is an SQLite file path or URI, or a postgres:// URL
	DSN      string
	LogLevel logger.LogLevel
}

// New creates a new database connection with the given options and migrates the schema
func New(opts Options) (*gorm.DB, error) {
	opts = setDefaults(opts)

	// Configure custom logger to ignore record not found errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
		},
	)

	dialector := dialectorFor(opts.DSN)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   newLogger,
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serialises writers; a single connection avoids "database is locked"
	if dialector.Name() == sqliteDialect {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

const sqliteDialect = "sqlite"

// dialectorFor picks PostgreSQL for postgres:// and postgresql:// URLs and SQLite otherwise
func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// Migrate creates or updates the tables of every model
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Establishment{},
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Table{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.LoyaltyTransaction{},
		&models.StockMovement{},
		&models.CashierSession{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsDuplicateKeyError checks if the given error is a unique constraint violation
func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func setDefaults(opts Options) Options {
	if opts.DSN == "" {
		opts.DSN = DefaultDSN
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Silent
	}
	return opts
}
