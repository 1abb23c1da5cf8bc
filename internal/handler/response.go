package handler

import (
	"errors"
	"strconv"
	"time"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// All responses share the original API's envelope: a success flag plus either
// data (with optional pagination) or a human-readable error.

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func respondPage(c *fiber.Ctx, data interface{}, pagination repository.Pagination) error {
	return c.JSON(fiber.Map{"success": true, "data": data, "pagination": pagination})
}

func respondErr(c *fiber.Ctx, err error) error {
	msg := err.Error()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		// Unclassified errors come from the storage layer; don't leak them.
		msg = "storage temporarily unavailable"
	}
	return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"success": false, "error": msg})
}

// Helper untuk ambil user info dari JWT context (set by auth middleware)
func getActor(c *fiber.Ctx) string {
	if username, ok := c.Locals("username").(string); ok && username != "" {
		return username
	}
	return "system"
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// parsePaging reads 1-indexed page/per_page query params with server defaults.
func parsePaging(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = repository.DefaultPage
	}
	perPage, err := strconv.Atoi(c.Query("per_page", "10"))
	if err != nil || perPage < 1 {
		perPage = repository.DefaultPerPage
	}
	return page, perPage
}

// parseDateQuery reads a YYYY-MM-DD query param, nil when absent.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid " + name + ": expected YYYY-MM-DD")
	}
	return &t, nil
}
