package models

import (
	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/pkg/types"
)

// Order is a customer order and its items
type Order struct {
	Base
	EstablishmentID    string `gorm:"index;not null"`
	CustomerID         string `gorm:"index"`
	TableID            string `gorm:"index"`
	Type               string `gorm:"not null"`
	Status             string `gorm:"index;not null"`
	Items              []OrderItem
	Subtotal           decimal.Decimal `gorm:"type:decimal(12,2)"`
	Discount           decimal.Decimal `gorm:"type:decimal(12,2)"`
	Total              decimal.Decimal `gorm:"type:decimal(12,2)"`
	CouponCode         string
	Notes              string
	CancellationReason string
}

// OrderItem is one line of an order, priced when the order was placed
type OrderItem struct {
	Base
	OrderID   string          `gorm:"index;not null"`
	ProductID string          `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2)"`
	Notes     string
}

// ToAPI converts the model to its wire representation
func (o Order) ToAPI() types.Order {
	items := make([]types.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, types.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
			Notes:     item.Notes,
		})
	}
	return types.Order{
		ID:                 o.ID,
		EstablishmentID:    o.EstablishmentID,
		CustomerID:         o.CustomerID,
		TableID:            o.TableID,
		Type:               o.Type,
		Status:             o.Status,
		Items:              items,
		Subtotal:           o.Subtotal,
		Discount:           o.Discount,
		Total:              o.Total,
		CouponCode:         o.CouponCode,
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
	}
}
