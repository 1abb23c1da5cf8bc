package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyRequest represents the token verification request body
type VerifyRequest struct {
	Token string `json:"token"`
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	if req.Username == "" || req.Password == "" {
		return respondErr(c, apperr.InvalidArgument("username and password are required"))
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, response)
}

// Verify handles token verification
// POST /api/v1/auth/verify
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}

	if req.Token == "" {
		return respondErr(c, apperr.InvalidArgument("missing token"))
	}

	response, err := h.authService.VerifyToken(req.Token)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, response)
}
