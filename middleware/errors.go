package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ApiError is a domain error carrying the HTTP status it should map to.
// Controllers return it from handlers; ErrorHandler translates it.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

// BadRequest covers malformed IDs, failed field validation and range checks.
func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}

// Conflict reports a uniqueness violation. The API contract maps conflicts
// to 400, not 409.
func Conflict(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

// Internal logs the underlying failure and returns a 500 error with a stable
// message. Raw persistence errors are never echoed to clients.
func Internal(message string, err error) *ApiError {
	log.Printf("%s: %v", message, err)
	return NewApiError(fiber.StatusInternalServerError, message)
}

// ErrorHandler is the single error-to-response boundary, registered as the
// fiber app ErrorHandler. Errors without a known status default to 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return JsonResponse(c, apiErr.Status, false, apiErr.Message, nil)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JsonResponse(c, fiberErr.Code, false, fiberErr.Message, nil)
	}

	log.Printf("unexpected error: %v", err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "an unexpected error", nil)
}
