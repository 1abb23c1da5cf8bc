package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

// List handles GET /suppliers with search and pagination.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page, perPage := parsePaging(c)
	suppliers, pagination, err := h.service.List(c.Query("search"), page, perPage)
	if err != nil {
		return respondErr(c, err)
	}
	return respondPage(c, suppliers, pagination)
}

// Get handles GET /suppliers/:id
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid supplier ID"))
	}

	supplier, err := h.service.GetByID(id)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, supplier)
}

// Create handles POST /suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	supplier, err := h.service.Create(&req, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondCreated(c, supplier)
}

// Update handles PUT /suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid supplier ID"))
	}

	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	supplier, err := h.service.Update(id, &req, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, supplier)
}

// Delete handles DELETE /suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid supplier ID"))
	}

	if err := h.service.Delete(id); err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.Map{"message": "Supplier deleted successfully"})
}

// Products handles GET /suppliers/:id/products
func (h *SupplierHandler) Products(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid supplier ID"))
	}

	products, err := h.service.Products(id)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, products)
}
