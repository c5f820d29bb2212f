package types

import (
	"fmt"
	"time"
)

// Table statuses
const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
	TableStatusReserved  = "reserved"
)

// Table is a dine-in table identified by a number and a QR code
type Table struct {
	ID              string    `json:"id"`
	Number          int       `json:"number"`
	Capacity        int       `json:"capacity"`
	QRCode          string    `json:"qr_code"`
	Status          string    `json:"status"`
	EstablishmentID string    `json:"establishment_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateTableRequest is the body of POST /tables. QRCode is generated when empty.
type CreateTableRequest struct {
	Number          int    `json:"number"`
	Capacity        int    `json:"capacity"`
	QRCode          string `json:"qr_code,omitempty"`
	EstablishmentID string `json:"establishment_id"`
}

// Validate checks the table payload
func (r CreateTableRequest) Validate() error {
	if r.Number <= 0 {
		return fmt.Errorf("number must be positive")
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	return required("establishment_id", r.EstablishmentID)
}

// UpdateTableRequest is the body of PATCH /tables/:id
type UpdateTableRequest struct {
	Capacity *int    `json:"capacity,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Validate checks the status value when one is given
func (r UpdateTableRequest) Validate() error {
	if r.Capacity != nil && *r.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	if r.Status == nil {
		return nil
	}
	switch *r.Status {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved:
		return nil
	}
	return fmt.Errorf("invalid table status: %s", *r.Status)
}
