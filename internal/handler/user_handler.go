package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// List handles GET /auth/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, users)
}

// Get handles GET /auth/users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid user ID"))
	}

	user, err := h.service.GetByID(id)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, user)
}

// Create handles POST /auth/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	user, err := h.service.Create(&req, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondCreated(c, user)
}

// Update handles PUT /auth/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid user ID"))
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	user, err := h.service.Update(id, &req, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, user)
}

// Delete handles DELETE /auth/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid user ID"))
	}

	if err := h.service.Delete(id); err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.Map{"message": "User deleted successfully"})
}
