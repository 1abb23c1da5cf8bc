package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Code classifies a failure for HTTP mapping and retry policy.
type Code string

const (
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInsufficientStock  Code = "INSUFFICIENT_STOCK"
	CodeConflict           Code = "CONFLICT"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)

// Error is a business-rule or infrastructure failure surfaced to the caller.
type Error struct {
	Code    Code
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newErr(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func InvalidArgument(msg string) *Error   { return newErr(CodeInvalidArgument, msg) }
func NotFound(msg string) *Error          { return newErr(CodeNotFound, msg) }
func InsufficientStock(msg string) *Error { return newErr(CodeInsufficientStock, msg) }
func Conflict(msg string) *Error          { return newErr(CodeConflict, msg) }
func Unauthorized(msg string) *Error      { return newErr(CodeUnauthorized, msg) }
func Forbidden(msg string) *Error         { return newErr(CodeForbidden, msg) }

// StorageUnavailable wraps a transient infrastructure failure after the
// internal retry has been exhausted.
func StorageUnavailable(cause error) *Error {
	return &Error{Code: CodeStorageUnavailable, Message: "storage temporarily unavailable", Err: cause}
}

// CodeOf extracts the classification, defaulting unknown errors to
// StorageUnavailable since anything unclassified came from the storage layer.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeStorageUnavailable
}

// IsBusiness reports whether err is a business-rule failure that must be
// surfaced verbatim and never retried.
func IsBusiness(err error) bool {
	var ae *Error
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Code != CodeStorageUnavailable
}

// HTTPStatus maps a classification to its response status.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidArgument, CodeInsufficientStock:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusServiceUnavailable
	}
}
