package handlers

import (
	"fmt"

	"github.com/AmirSoleimani/VoucherCodeGenerator/vcgen"
	fiber "github.com/gofiber/fiber/v2"

	"github.com/restopos/pos-e2e/internal/db/models"
	"github.com/restopos/pos-e2e/pkg/types"
)

// qrCodePattern is the vcgen pattern of generated table QR codes
const qrCodePattern = "########"

// TableHandler handles HTTP requests for dine-in tables
type TableHandler struct {
	*APIHandler
}

// NewTableHandler creates a new TableHandler instance
func NewTableHandler(api *APIHandler) *TableHandler {
	return &TableHandler{APIHandler: api}
}

func (h *TableHandler) table(c *fiber.Ctx) (*models.Table, error) {
	return scopedGet(h.APIHandler, c, "Table",
		func(id string) (*models.Table, error) { return h.repos.Tables.Get(c.Context(), id) },
		func(m *models.Table) string { return m.EstablishmentID })
}

// newQRCode generates the code printed on a table
func newQRCode(number int) (string, error) {
	g := vcgen.New(&vcgen.Generator{
		Count:   1,
		Pattern: qrCodePattern,
		Prefix:  fmt.Sprintf("TABLE-%d-", number),
	})
	codes, err := g.Run()
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}
	if codes == nil || len(*codes) == 0 {
		return "", fmt.Errorf("failed to generate qr code: no code produced")
	}
	return (*codes)[0], nil
}

// ListTables lists the tables of an establishment
func (h *TableHandler) ListTables(c *fiber.Ctx) error {
	opts, err := h.scopedFilters(c)
	if err != nil {
		return err
	}
	opts.OrderBy = "number"
	items, total, err := h.repos.Tables.List(c.Context(), opts)
	if err != nil {
		return err
	}
	return respondList(c, items, total, opts, models.Table.ToAPI)
}

// GetTable returns one table
func (h *TableHandler) GetTable(c *fiber.Ctx) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, table.ToAPI())
}

// GetTableByQR resolves a table from the code printed on it
func (h *TableHandler) GetTableByQR(c *fiber.Ctx) error {
	table, err := h.repos.Tables.GetByQRCode(c.Context(), c.Params("code"))
	if err != nil {
		return storeError("Table", err)
	}
	if _, err := h.ownedEstablishment(c, table.EstablishmentID); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Table not found")
	}
	return respond(c, fiber.StatusOK, table.ToAPI())
}

// CreateTable creates a table. Number is unique per establishment and QR code globally.
func (h *TableHandler) CreateTable(c *fiber.Ctx) error {
	req, err := parseBody[types.CreateTableRequest](c)
	if err != nil {
		return err
	}
	if _, err := h.ownedEstablishment(c, req.EstablishmentID); err != nil {
		return err
	}

	code := req.QRCode
	if code == "" {
		if code, err = newQRCode(req.Number); err != nil {
			return err
		}
	}
	table := &models.Table{
		Number:          req.Number,
		Capacity:        req.Capacity,
		QRCode:          code,
		Status:          types.TableStatusAvailable,
		EstablishmentID: req.EstablishmentID,
	}
	if err := h.repos.Tables.Create(c.Context(), table); err != nil {
		return storeError("Table", err)
	}
	return respond(c, fiber.StatusCreated, table.ToAPI())
}

// UpdateTable changes capacity or status
func (h *TableHandler) UpdateTable(c *fiber.Ctx) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}
	req, err := parseBody[types.UpdateTableRequest](c)
	if err != nil {
		return err
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Status != nil {
		table.Status = *req.Status
	}
	if err := h.repos.Tables.Update(c.Context(), table); err != nil {
		return storeError("Table", err)
	}
	return respond(c, fiber.StatusOK, table.ToAPI())
}

// DeleteTable removes a table
func (h *TableHandler) DeleteTable(c *fiber.Ctx) error {
	table, err := h.table(c)
	if err != nil {
		return err
	}
	if err := h.repos.Tables.Delete(c.Context(), table.ID); err != nil {
		return storeError("Table", err)
	}
	return noContent(c)
}
