package handler

import (
	"strconv"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// ProductRequest is the create/update body. WarehouseLocation is only used
// at creation for the initial inventory row.
type ProductRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	CategoryID        uuid.UUID       `json:"category_id"`
	SupplierID        uuid.UUID       `json:"supplier_id"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	ReorderLevel      *int            `json:"reorder_level"`
	WarehouseLocation string          `json:"warehouse_location"`
}

func (r *ProductRequest) toModel() *model.Product {
	reorderLevel := 10
	if r.ReorderLevel != nil {
		reorderLevel = *r.ReorderLevel
	}
	return &model.Product{
		SKU:          r.SKU,
		Name:         r.Name,
		Description:  r.Description,
		CategoryID:   r.CategoryID,
		SupplierID:   r.SupplierID,
		UnitPrice:    r.UnitPrice,
		ReorderLevel: reorderLevel,
	}
}

// List handles GET /products with search, category_id, supplier_id filters.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{Search: c.Query("search")}
	filter.Page, filter.PerPage = parsePaging(c)

	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondErr(c, apperr.InvalidArgument("invalid category_id"))
		}
		filter.CategoryID = id
	}
	if raw := c.Query("supplier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondErr(c, apperr.InvalidArgument("invalid supplier_id"))
		}
		filter.SupplierID = id
	}

	products, pagination, err := h.service.List(filter)
	if err != nil {
		return respondErr(c, err)
	}
	return respondPage(c, products, pagination)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid product ID"))
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, product)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	product, err := h.service.Create(req.toModel(), req.WarehouseLocation, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondCreated(c, product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid product ID"))
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	product, err := h.service.Update(id, req.toModel(), getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid product ID"))
	}

	if err := h.service.Delete(id); err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.Map{"message": "Product deleted successfully"})
}

// LowStock handles GET /products/low-stock?threshold=N
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	var threshold *int
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return respondErr(c, apperr.InvalidArgument("invalid threshold"))
		}
		threshold = &v
	}

	products, err := h.service.LowStock(threshold)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, products)
}
