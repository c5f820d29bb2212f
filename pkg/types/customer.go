package types

import "time"

// Customer is a buyer registered with an establishment
type Customer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone"`
	CPF             string    `json:"cpf,omitempty"`
	EstablishmentID string    `json:"establishment_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateCustomerRequest is the body of POST /customers
type CreateCustomerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone"`
	CPF             string `json:"cpf,omitempty"`
	EstablishmentID string `json:"establishment_id"`
}

// Validate checks the customer payload
func (r CreateCustomerRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	if err := required("phone", r.Phone); err != nil {
		return err
	}
	if err := required("establishment_id", r.EstablishmentID); err != nil {
		return err
	}
	if r.Email != "" {
		if err := ValidateEmail(r.Email); err != nil {
			return err
		}
	}
	if r.CPF != "" {
		return ValidateCPF(r.CPF)
	}
	return nil
}

// UpdateCustomerRequest is the body of PATCH /customers/:id
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
