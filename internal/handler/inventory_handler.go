package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	query         service.QueryService
	ledger        service.LedgerService
	inventoryRepo repository.InventoryRepository
}

func NewInventoryHandler(query service.QueryService, ledger service.LedgerService, invRepo repository.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{query: query, ledger: ledger, inventoryRepo: invRepo}
}

// List handles GET /inventory with search and pagination.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page, perPage := parsePaging(c)
	records, pagination, err := h.query.Inventory(c.Query("search"), page, perPage)
	if err != nil {
		return respondErr(c, err)
	}
	return respondPage(c, records, pagination)
}

// Get handles GET /inventory/:productId
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid product ID"))
	}

	inv, err := h.query.InventoryByProduct(productID)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, inv)
}

// UpdateInventoryRequest is the body for the direct quantity update; the
// quantity change itself goes through the ledger as an adjustment.
type UpdateInventoryRequest struct {
	Quantity          *int   `json:"quantity"`
	WarehouseLocation string `json:"warehouse_location"`
	Remarks           string `json:"remarks"`
}

// Update handles PUT /inventory/:productId
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid product ID"))
	}

	var req UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}
	if req.Quantity == nil {
		return respondErr(c, apperr.InvalidArgument("missing required field: quantity"))
	}
	if *req.Quantity < 0 {
		return respondErr(c, apperr.InvalidArgument("quantity cannot be negative"))
	}

	remarks := req.Remarks
	if remarks == "" {
		remarks = "direct inventory update"
	}

	// Location first: if it fails, nothing has posted to the ledger yet.
	if req.WarehouseLocation != "" {
		if err := h.inventoryRepo.UpdateLocation(productID, req.WarehouseLocation, getActor(c)); err != nil {
			return respondErr(c, err)
		}
	}

	result, err := h.ledger.Adjust(c.UserContext(), productID, *req.Quantity, remarks, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, result)
}

// Summary handles GET /inventory/summary
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.query.StockSummary()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, summary)
}

// ByCategory handles GET /inventory/by-category
func (h *InventoryHandler) ByCategory(c *fiber.Ctx) error {
	rollup, err := h.query.StockByCategory()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, rollup)
}

// BySupplier handles GET /inventory/by-supplier
func (h *InventoryHandler) BySupplier(c *fiber.Ctx) error {
	rollup, err := h.query.StockBySupplier()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, rollup)
}
