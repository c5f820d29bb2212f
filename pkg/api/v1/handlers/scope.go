package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/auth"
	"github.com/restopos/pos-e2e/internal/db/models"
)

// ownedEstablishment loads an establishment of the authenticated user.
// Establishments of other users are reported as missing.
func (h *APIHandler) ownedEstablishment(c *fiber.Ctx, id string) (*models.Establishment, error) {
	if id == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, ErrMsgEstablishmentIDReqd)
	}
	est, err := h.repos.Establishments.Get(c.Context(), id)
	if err != nil {
		return nil, storeError("Establishment", err)
	}
	if est.OwnerID != auth.UserID(c) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Establishment not found")
	}
	return est, nil
}

// scopedFilters returns list options filtered to the establishment named by the
// establishment_id query parameter, which must belong to the caller
func (h *APIHandler) scopedFilters(c *fiber.Ctx) (*models.ListOptions, error) {
	opts, err := getPaginationOptions(c)
	if err != nil {
		return nil, err
	}
	est, err := h.ownedEstablishment(c, c.Query("establishment_id"))
	if err != nil {
		return nil, err
	}
	opts.Filters["establishment_id"] = est.ID
	return opts, nil
}

// scopedGet loads an entity by the :id param and checks the caller owns its establishment
func scopedGet[T any](h *APIHandler, c *fiber.Ctx, resource string, get func(id string) (*T, error), establishmentOf func(*T) string) (*T, error) {
	entity, err := get(c.Params("id"))
	if err != nil {
		return nil, storeError(resource, err)
	}
	if _, err := h.ownedEstablishment(c, establishmentOf(entity)); err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, resource+" not found")
	}
	return entity, nil
}
