package models

import (
	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/pkg/types"
)

// Category groups products of one establishment
type Category struct {
	Base
	Name            string `gorm:"not null"`
	Description     string
	EstablishmentID string `gorm:"index;not null"`
}

// ToAPI converts the model to its wire representation
func (c Category) ToAPI() types.Category {
	return types.Category{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		EstablishmentID: c.EstablishmentID,
		CreatedAt:       c.CreatedAt,
	}
}

// Product is a sellable item. SKU is unique per establishment.
type Product struct {
	Base
	Name            string          `gorm:"not null"`
	Description     string
	Price           decimal.Decimal `gorm:"type:decimal(12,2)"`
	SKU             string          `gorm:"not null;uniqueIndex:idx_product_sku"`
	EstablishmentID string          `gorm:"not null;uniqueIndex:idx_product_sku"`
	CategoryID      string          `gorm:"index"`
	IsAvailable     bool
	StockQuantity   int
}

// ToAPI converts the model to its wire representation
func (p Product) ToAPI() types.Product {
	return types.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		SKU:             p.SKU,
		EstablishmentID: p.EstablishmentID,
		CategoryID:      p.CategoryID,
		IsAvailable:     p.IsAvailable,
		CreatedAt:       p.CreatedAt,
	}
}
