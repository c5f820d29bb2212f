package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	*APIHandler
}

// NewCustomerHandler creates a new CustomerHandler instance
func NewCustomerHandler(api *APIHandler) *CustomerHandler {
	return &CustomerHandler{APIHandler: api}
}

func (h *CustomerHandler) customer(c *fiber.Ctx) (*models.Customer, error) {
	return scopedGet(h.APIHandler, c, "Customer",
		func(id string) (*models.Customer, error) { return h.repos.Customers.Get(c.Context(), id) },
		func(m *models.Customer) string { return m.EstablishmentID })
}

// ListCustomers lists the customers of an establishment
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	opts, err := h.scopedFilters(c)
	if err != nil {
		return err
	}
	items, total, err := h.repos.Customers.List(c.Context(), opts)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.Customer.ToAPI)
}

// GetCustomer returns one customer
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.customer(c)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, customer.ToAPI())
}

// CreateCustomer creates a customer. Phone, CPF and email are unique per establishment.
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	req, err := parseBody[types.CreateCustomerRequest](c)
	if err != nil {
		return err
	}
	if _, err := h.ownedEstablishment(c, req.EstablishmentID); err != nil {
		return err
	}

	customer := &models.Customer{
		Name:            req.Name,
		Email:           models.NullableString(req.Email),
		Phone:           types.OnlyDigits(req.Phone),
		CPF:             models.NullableString(types.OnlyDigits(req.CPF)),
		EstablishmentID: req.EstablishmentID,
	}
	if err := h.repos.Customers.Create(c.Context(), customer); err != nil {
		return storeError("Customer", err)
	}
	return respond(c, fiber.StatusCreated, customer.ToAPI())
}

// UpdateCustomer applies a partial update
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	customer, err := h.customer(c)
	if err != nil {
		return err
	}
	req, err := parsePatch[types.UpdateCustomerRequest](c)
	if err != nil {
		return err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
		}
		customer.Name = *req.Name
	}
	if req.Email != nil {
		if *req.Email != "" {
			if err := types.ValidateEmail(*req.Email); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
		customer.Email = models.NullableString(*req.Email)
	}
	if err := h.repos.Customers.Update(c.Context(), customer); err != nil {
		return storeError("Customer", err)
	}
	return respond(c, fiber.StatusOK, customer.ToAPI())
}

// DeleteCustomer removes a customer
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	customer, err := h.customer(c)
	if err != nil {
		return err
	}
	if err := h.repos.Customers.Delete(c.Context(), customer.ID); err != nil {
		return storeError("Customer", err)
	}
	return noContent(c)
}
