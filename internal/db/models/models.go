// Package models holds the gorm models of the stand-in POS API
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultLimit is the max number of rows that are retrieved from the DB per listing API call
	DefaultLimit = 10
	// MaxLimit caps the limit a caller may ask for
	MaxLimit = 100
)

// Base carries the UUID primary key and timestamps every model shares
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// ListOptions represents pagination and filtering options for list operations
type ListOptions struct {
	Limit   int                    `json:"limit"`  // Number of items to return
	Offset  int                    `json:"offset"` // Number of items to skip
	Filters map[string]interface{} `json:"filters,omitempty"`
	OrderBy string                 `json:"order_by,omitempty"`
}

// Page returns the 1-based page number the options point at
func (o *ListOptions) Page() int {
	if o == nil || o.Limit <= 0 {
		return 1
	}
	return o.Offset/o.Limit + 1
}
