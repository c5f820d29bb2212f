package handlers

import (
	"math"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// Delivery time estimate: a fixed preparation time plus minutes per km
const (
	basePreparationMinutes = 20
	minutesPerKm           = 3
)

// DeliveryHandler handles HTTP requests for delivery fees
type DeliveryHandler struct {
	*APIHandler
}

// NewDeliveryHandler creates a new DeliveryHandler instance
func NewDeliveryHandler(api *APIHandler) *DeliveryHandler {
	return &DeliveryHandler{APIHandler: api}
}

// CalculateFee quotes the delivery fee of an establishment for a distance.
// Distances beyond the delivery radius are a 400.
func (h *DeliveryHandler) CalculateFee(c *fiber.Ctx) error {
	req, err := parseBody[types.DeliveryFeeRequest](c)
	if err != nil {
		return err
	}
	est, err := h.ownedEstablishment(c, req.EstablishmentID)
	if err != nil {
		return err
	}
	if est.DeliveryRadiusKm > 0 && req.DistanceKm > est.DeliveryRadiusKm {
		return fiber.NewError(fiber.StatusBadRequest, "address is outside the delivery radius")
	}
	return respond(c, fiber.StatusOK, quoteDelivery(est, req.DistanceKm))
}

// quoteDelivery computes base + perKm * distance, rounded to cents
func quoteDelivery(est *models.Establishment, distanceKm float64) types.DeliveryFeeResponse {
	fee := est.DeliveryBaseFee.Add(est.DeliveryFeePerKm.Mul(decimal.NewFromFloat(distanceKm))).Round(2)
	return types.DeliveryFeeResponse{
		EstablishmentID:  est.ID,
		DistanceKm:       distanceKm,
		Fee:              fee,
		EstimatedMinutes: basePreparationMinutes + int(math.Ceil(distanceKm*minutesPerKm)),
	}
}
