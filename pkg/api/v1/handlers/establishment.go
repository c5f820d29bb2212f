package handlers

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/internal/auth"
	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// Delivery settings of an establishment created without them
var (
	DefaultDeliveryBaseFee  = decimal.RequireFromString("5.00")
	DefaultDeliveryFeePerKm = decimal.RequireFromString("1.50")
)

// DefaultDeliveryRadiusKm is the delivery radius of an establishment created without one
const DefaultDeliveryRadiusKm = 10.0

// EstablishmentHandler handles HTTP requests for establishments
type EstablishmentHandler struct {
	*APIHandler
}

// NewEstablishmentHandler creates a new EstablishmentHandler instance
func NewEstablishmentHandler(api *APIHandler) *EstablishmentHandler {
	return &EstablishmentHandler{APIHandler: api}
}

// ListEstablishments lists the establishments of the authenticated user
func (h *EstablishmentHandler) ListEstablishments(c *fiber.Ctx) error {
	opts, err := getPaginationOptions(c)
	if err != nil {
		return err
	}
	opts.Filters["owner_id"] = auth.UserID(c)

	items, total, err := h.repos.Establishments.List(c.Context(), opts)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.Establishment.ToAPI)
}

// GetEstablishment returns one establishment
func (h *EstablishmentHandler) GetEstablishment(c *fiber.Ctx) error {
	est, err := h.ownedEstablishment(c, c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, est.ToAPI())
}

// CreateEstablishment creates an establishment owned by the caller. CNPJ is unique.
func (h *EstablishmentHandler) CreateEstablishment(c *fiber.Ctx) error {
	req, err := parseBody[types.CreateEstablishmentRequest](c)
	if err != nil {
		return err
	}

	est := &models.Establishment{
		Name:             req.Name,
		CNPJ:             types.OnlyDigits(req.CNPJ),
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		OwnerID:          auth.UserID(c),
		IsOpen:           true,
		DeliveryBaseFee:  DefaultDeliveryBaseFee,
		DeliveryFeePerKm: DefaultDeliveryFeePerKm,
		DeliveryRadiusKm: DefaultDeliveryRadiusKm,
	}
	if req.DeliveryBaseFee != nil {
		est.DeliveryBaseFee = *req.DeliveryBaseFee
	}
	if req.DeliveryFeePerKm != nil {
		est.DeliveryFeePerKm = *req.DeliveryFeePerKm
	}
	if req.DeliveryRadiusKm > 0 {
		est.DeliveryRadiusKm = req.DeliveryRadiusKm
	}

	if err := h.repos.Establishments.Create(c.Context(), est); err != nil {
		return storeError("Establishment", err)
	}
	return respond(c, fiber.StatusCreated, est.ToAPI())
}

// UpdateEstablishment applies a partial update
func (h *EstablishmentHandler) UpdateEstablishment(c *fiber.Ctx) error {
	est, err := h.ownedEstablishment(c, c.Params("id"))
	if err != nil {
		return err
	}
	req, err := parsePatch[types.UpdateEstablishmentRequest](c)
	if err != nil {
		return err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
		}
		est.Name = *req.Name
	}
	if req.Phone != nil {
		est.Phone = *req.Phone
	}
	if req.Address != nil {
		est.Address = *req.Address
	}
	if req.IsOpen != nil {
		est.IsOpen = *req.IsOpen
	}
	if err := h.repos.Establishments.Update(c.Context(), est); err != nil {
		return storeError("Establishment", err)
	}
	return respond(c, fiber.StatusOK, est.ToAPI())
}

// DeleteEstablishment removes an establishment
func (h *EstablishmentHandler) DeleteEstablishment(c *fiber.Ctx) error {
	est, err := h.ownedEstablishment(c, c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.repos.Establishments.Delete(c.Context(), est.ID); err != nil {
		return storeError("Establishment", err)
	}
	return noContent(c)
}
