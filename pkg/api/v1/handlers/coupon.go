package handlers

import (
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// CouponHandler handles HTTP requests for coupons
type CouponHandler struct {
	*APIHandler
}

// NewCouponHandler creates a new CouponHandler instance
func NewCouponHandler(api *APIHandler) *CouponHandler {
	return &CouponHandler{APIHandler: api}
}

func (h *CouponHandler) coupon(c *fiber.Ctx) (*models.Coupon, error) {
	return scopedGet(h.APIHandler, c, "Coupon",
		func(id string) (*models.Coupon, error) { return h.repos.Coupons.Get(c.Context(), id) },
		func(m *models.Coupon) string { return m.EstablishmentID })
}

// ListCoupons lists the coupons of an establishment
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	opts, err := h.scopedFilters(c)
	if err != nil {
		return err
	}
	items, total, err := h.repos.Coupons.List(c.Context(), opts)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.Coupon.ToAPI)
}

// GetCoupon returns one coupon
func (h *CouponHandler) GetCoupon(c *fiber.Ctx) error {
	coupon, err := h.coupon(c)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, coupon.ToAPI())
}

// CreateCoupon creates a coupon. Codes are stored upper-case and are unique per establishment.
func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	req, err := parseBody[types.CreateCouponRequest](c)
	if err != nil {
		return err
	}
	if _, err := h.ownedEstablishment(c, req.EstablishmentID); err != nil {
		return err
	}

	coupon := &models.Coupon{
		Code:            strings.ToUpper(req.Code),
		DiscountType:    req.DiscountType,
		DiscountValue:   req.DiscountValue,
		MaxUses:         req.MaxUses,
		ValidUntil:      req.ValidUntil,
		IsActive:        true,
		EstablishmentID: req.EstablishmentID,
	}
	if req.MinOrderValue != nil {
		coupon.MinOrderValue = *req.MinOrderValue
	}
	if err := h.repos.Coupons.Create(c.Context(), coupon); err != nil {
		return storeError("Coupon", err)
	}
	return respond(c, fiber.StatusCreated, coupon.ToAPI())
}

// UpdateCoupon applies a partial update
func (h *CouponHandler) UpdateCoupon(c *fiber.Ctx) error {
	coupon, err := h.coupon(c)
	if err != nil {
		return err
	}
	req, err := parsePatch[types.UpdateCouponRequest](c)
	if err != nil {
		return err
	}
	if req.DiscountValue != nil {
		if !req.DiscountValue.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest, "discount_value must be positive")
		}
		coupon.DiscountValue = *req.DiscountValue
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}
	if req.ValidUntil != nil {
		coupon.ValidUntil = req.ValidUntil
	}
	if err := h.repos.Coupons.Update(c.Context(), coupon); err != nil {
		return storeError("Coupon", err)
	}
	return respond(c, fiber.StatusOK, coupon.ToAPI())
}

// DeleteCoupon removes a coupon
func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	coupon, err := h.coupon(c)
	if err != nil {
		return err
	}
	if err := h.repos.Coupons.Delete(c.Context(), coupon.ID); err != nil {
		return storeError("Coupon", err)
	}
	return noContent(c)
}

// ValidateCoupon reports whether a code applies to an order total. Unknown codes are 404;
// known codes that do not apply are 200 with valid=false and a reason.
func (h *CouponHandler) ValidateCoupon(c *fiber.Ctx) error {
	var req types.ValidateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	if req.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "code is required")
	}
	if _, err := h.ownedEstablishment(c, req.EstablishmentID); err != nil {
		return err
	}

	coupon, err := h.repos.Coupons.GetByCode(c.Context(), req.EstablishmentID, strings.ToUpper(req.Code))
	if err != nil {
		return storeError("Coupon", err)
	}

	resp := types.ValidateCouponResponse{Coupon: coupon.ToAPI()}
	if ok, reason := coupon.Applicable(req.OrderTotal, h.now()); ok {
		resp.Valid = true
		resp.Discount = coupon.ToAPI().DiscountFor(req.OrderTotal)
	} else {
		resp.Reason = reason
	}
	return respond(c, fiber.StatusOK, resp)
}
