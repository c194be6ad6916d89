package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"social-account/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

var domainStatus = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, fiber.StatusUnprocessableEntity},
	{domain.ErrNotFound, fiber.StatusNotFound},
	{domain.ErrNotAllowed, fiber.StatusNotAcceptable},
	{domain.ErrForbidden, fiber.StatusForbidden},
	{domain.ErrRateLimited, fiber.StatusTooManyRequests},
	{domain.ErrConflict, fiber.StatusConflict},
}

// StatusFor maps a service error to its HTTP status, 500 when unknown.
func StatusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	for _, m := range domainStatus {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return fiber.StatusInternalServerError
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := StatusFor(err)
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	traceID := uuid.New().String()[:8]

	if code != fiber.StatusInternalServerError {
		message = err.Error()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			message = fe.Message
		}
	} else {
		slog.Error("Unhandled error", "trace_id", traceID, "path", c.Path(), "error", err)
	}

	switch code {
	case fiber.StatusBadRequest:
		errorCode = "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		errorCode = "UNAUTHORIZED"
	case fiber.StatusForbidden:
		errorCode = "FORBIDDEN"
	case fiber.StatusNotFound:
		errorCode = "NOT_FOUND"
	case fiber.StatusNotAcceptable:
		errorCode = "NOT_ALLOWED"
	case fiber.StatusConflict:
		errorCode = "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		errorCode = "VALIDATION_ERROR"
	case fiber.StatusTooManyRequests:
		errorCode = "RATE_LIMITED"
	}

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func UnprocessableEntity(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnprocessableEntity, message)
}
