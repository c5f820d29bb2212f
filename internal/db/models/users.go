package models

import (
	"github.com/restopos/pos-e2e/pkg/types"
)

// User represents an account of the POS API
type User struct {
	Base
	Name         string `json:"name" gorm:"not null"`
	Email        string `json:"email" gorm:"not null;uniqueIndex"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-" gorm:"not null"`
}

// ToAPI converts the model to its wire representation
func (u User) ToAPI() types.User {
	return types.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
