package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// StockHandler handles HTTP requests for stock movements and levels
type StockHandler struct {
	*APIHandler
}

// NewStockHandler creates a new StockHandler instance
func NewStockHandler(api *APIHandler) *StockHandler {
	return &StockHandler{APIHandler: api}
}

func (h *StockHandler) ownedProduct(c *fiber.Ctx, id string) (*models.Product, error) {
	if id == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "product_id is required")
	}
	product, err := h.repos.Products.Get(c.Context(), id)
	if err != nil {
		return nil, storeError("Product", err)
	}
	if _, err := h.ownedEstablishment(c, product.EstablishmentID); err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}
	return product, nil
}

// CreateMovement records a stock movement. An outbound movement larger than the stock is a 400.
func (h *StockHandler) CreateMovement(c *fiber.Ctx) error {
	req, err := parseBody[types.CreateStockMovementRequest](c)
	if err != nil {
		return err
	}
	if _, err := h.ownedProduct(c, req.ProductID); err != nil {
		return err
	}

	movement := &models.StockMovement{
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
	}
	if _, err := h.repos.Stock.ApplyMovement(c.Context(), movement); err != nil {
		if errors.Is(err, models.ErrInsufficientStock) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return storeError("Product", err)
	}
	return respond(c, fiber.StatusCreated, movement.ToAPI())
}

// GetLevel returns the quantity on hand of a product
func (h *StockHandler) GetLevel(c *fiber.Ctx) error {
	product, err := h.ownedProduct(c, c.Params("productId"))
	if err != nil {
		return err
	}
	quantity, err := h.repos.Stock.Level(c.Context(), product.ID)
	if err != nil {
		return storeError("Product", err)
	}
	return respond(c, fiber.StatusOK, types.StockLevel{ProductID: product.ID, Quantity: quantity})
}

// ListMovements lists the movements of the product named by the product_id query parameter
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	opts, err := getPaginationOptions(c)
	if err != nil {
		return err
	}
	product, err := h.ownedProduct(c, c.Query("product_id"))
	if err != nil {
		return err
	}
	opts.Filters["product_id"] = product.ID

	items, total, err := h.repos.Stock.List(c.Context(), opts)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.StockMovement.ToAPI)
}
