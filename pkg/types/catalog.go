package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products of one establishment
type Category struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	EstablishmentID string    `json:"establishment_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateCategoryRequest is the body of POST /categories
type CreateCategoryRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	EstablishmentID string `json:"establishment_id"`
}

// Validate checks the category payload
func (r CreateCategoryRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	return required("establishment_id", r.EstablishmentID)
}

// UpdateCategoryRequest is the body of PATCH /categories/:id
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Product is a sellable item
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	SKU             string          `json:"sku"`
	EstablishmentID string          `json:"establishment_id"`
	CategoryID      string          `json:"category_id,omitempty"`
	IsAvailable     bool            `json:"is_available"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateProductRequest is the body of POST /products
type CreateProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	SKU             string          `json:"sku"`
	EstablishmentID string          `json:"establishment_id"`
	CategoryID      string          `json:"category_id,omitempty"`
}

// Validate checks the product payload
func (r CreateProductRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	if err := required("sku", r.SKU); err != nil {
		return err
	}
	if err := required("establishment_id", r.EstablishmentID); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

// UpdateProductRequest is the body of PATCH /products/:id
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsAvailable *bool            `json:"is_available,omitempty"`
}
