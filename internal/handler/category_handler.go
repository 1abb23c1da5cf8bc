package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, categories)
}

// Get handles GET /categories/:id
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid category ID"))
	}

	category, err := h.service.GetByID(id)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, category)
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	category, err := h.service.Create(&req, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondCreated(c, category)
}

// Update handles PUT /categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid category ID"))
	}

	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	category, err := h.service.Update(id, &req, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, category)
}

// Delete handles DELETE /categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid category ID"))
	}

	if err := h.service.Delete(id); err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.Map{"message": "Category deleted successfully"})
}
