package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{InvalidArgument("bad input"), fiber.StatusBadRequest},
		{InsufficientStock("not enough"), fiber.StatusBadRequest},
		{NotFound("missing"), fiber.StatusNotFound},
		{Conflict("referenced"), fiber.StatusConflict},
		{Unauthorized("no token"), fiber.StatusUnauthorized},
		{Forbidden("wrong role"), fiber.StatusForbidden},
		{StorageUnavailable(errors.New("down")), fiber.StatusServiceUnavailable},
		{errors.New("anything else"), fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "err=%v", tt.err)
	}
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(InsufficientStock("x")))
	assert.True(t, IsBusiness(NotFound("x")))
	assert.True(t, IsBusiness(InvalidArgument("x")))
	assert.True(t, IsBusiness(Conflict("x")))
	assert.False(t, IsBusiness(StorageUnavailable(errors.New("x"))))
	assert.False(t, IsBusiness(errors.New("raw storage error")))
}

func TestCodeOfWrappedError(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("product not found"))
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestStorageUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := StorageUnavailable(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage temporarily unavailable", err.Error())
}
