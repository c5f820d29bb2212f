package models

import (
	"github.com/restopos/pos-e2e/pkg/types"
)

// Customer is a buyer of one establishment. Phone, CPF and email are unique per establishment;
// the optional ones are stored as NULL when absent so they never collide.
type Customer struct {
	Base
	Name            string  `gorm:"not null"`
	Email           *string `gorm:"uniqueIndex:idx_customer_email"`
	Phone           string  `gorm:"not null;uniqueIndex:idx_customer_phone"`
	CPF             *string `gorm:"uniqueIndex:idx_customer_cpf"`
	EstablishmentID string  `gorm:"not null;uniqueIndex:idx_customer_phone;uniqueIndex:idx_customer_cpf;uniqueIndex:idx_customer_email"`
}

// ToAPI converts the model to its wire representation
func (c Customer) ToAPI() types.Customer {
	return types.Customer{
		ID:              c.ID,
		Name:            c.Name,
		Email:           deref(c.Email),
		Phone:           c.Phone,
		CPF:             deref(c.CPF),
		EstablishmentID: c.EstablishmentID,
		CreatedAt:       c.CreatedAt,
	}
}

// NullableString maps the empty string to NULL
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
