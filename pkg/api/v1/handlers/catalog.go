package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// CatalogHandler handles HTTP requests for categories and products
type CatalogHandler struct {
	*APIHandler
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(api *APIHandler) *CatalogHandler {
	return &CatalogHandler{APIHandler: api}
}

func (h *CatalogHandler) category(c *fiber.Ctx) (*models.Category, error) {
	return scopedGet(h.APIHandler, c, "Category",
		func(id string) (*models.Category, error) { return h.repos.Categories.Get(c.Context(), id) },
		func(m *models.Category) string { return m.EstablishmentID })
}

func (h *CatalogHandler) product(c *fiber.Ctx) (*models.Product, error) {
	return scopedGet(h.APIHandler, c, "Product",
		func(id string) (*models.Product, error) { return h.repos.Products.Get(c.Context(), id) },
		func(m *models.Product) string { return m.EstablishmentID })
}

// ListCategories lists the categories of an establishment
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	opts, err := h.scopedFilters(c)
	if err != nil {
		return err
	}
	items, total, err := h.repos.Categories.List(c.Context(), opts)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.Category.ToAPI)
}

// GetCategory returns one category
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.category(c)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, category.ToAPI())
}

// CreateCategory creates a category
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	req, err := parseBody[types.CreateCategoryRequest](c)
	if err != nil {
		return err
	}
	if _, err := h.ownedEstablishment(c, req.EstablishmentID); err != nil {
		return err
	}

	category := &models.Category{
		Name:            req.Name,
		Description:     req.Description,
		EstablishmentID: req.EstablishmentID,
	}
	if err := h.repos.Categories.Create(c.Context(), category); err != nil {
		return storeError("Category", err)
	}
	return respond(c, fiber.StatusCreated, category.ToAPI())
}

// UpdateCategory applies a partial update
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	category, err := h.category(c)
	if err != nil {
		return err
	}
	req, err := parsePatch[types.UpdateCategoryRequest](c)
	if err != nil {
		return err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if err := h.repos.Categories.Update(c.Context(), category); err != nil {
		return storeError("Category", err)
	}
	return respond(c, fiber.StatusOK, category.ToAPI())
}

// DeleteCategory removes a category
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	category, err := h.category(c)
	if err != nil {
		return err
	}
	if err := h.repos.Categories.Delete(c.Context(), category.ID); err != nil {
		return storeError("Category", err)
	}
	return noContent(c)
}

// ListProducts lists the products of an establishment, optionally of one category
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	opts, err := h.scopedFilters(c)
	if err != nil {
		return err
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		opts.Filters["category_id"] = categoryID
	}
	items, total, err := h.repos.Products.List(c.Context(), opts)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.Product.ToAPI)
}

// GetProduct returns one product
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.product(c)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, product.ToAPI())
}

// CreateProduct creates a product. SKU is unique per establishment.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	req, err := parseBody[types.CreateProductRequest](c)
	if err != nil {
		return err
	}
	if _, err := h.ownedEstablishment(c, req.EstablishmentID); err != nil {
		return err
	}
	if req.CategoryID != "" {
		category, err := h.repos.Categories.Get(c.Context(), req.CategoryID)
		if err != nil {
			return storeError("Category", err)
		}
		if category.EstablishmentID != req.EstablishmentID {
			return fiber.NewError(fiber.StatusBadRequest, "category belongs to another establishment")
		}
	}

	product := &models.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		SKU:             req.SKU,
		EstablishmentID: req.EstablishmentID,
		CategoryID:      req.CategoryID,
		IsAvailable:     true,
	}
	if err := h.repos.Products.Create(c.Context(), product); err != nil {
		return storeError("Product", err)
	}
	return respond(c, fiber.StatusCreated, product.ToAPI())
}

// UpdateProduct applies a partial update
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	product, err := h.product(c)
	if err != nil {
		return err
	}
	req, err := parsePatch[types.UpdateProductRequest](c)
	if err != nil {
		return err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "price cannot be negative")
		}
		product.Price = *req.Price
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	if err := h.repos.Products.Update(c.Context(), product); err != nil {
		return storeError("Product", err)
	}
	return respond(c, fiber.StatusOK, product.ToAPI())
}

// DeleteProduct removes a product
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	product, err := h.product(c)
	if err != nil {
		return err
	}
	if err := h.repos.Products.Delete(c.Context(), product.ID); err != nil {
		return storeError("Product", err)
	}
	return noContent(c)
}
