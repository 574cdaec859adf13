package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"noteapi/internal/dto"
	"noteapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id" example:"3f0c9b1e-5a4d-4b8e-9a51-2c7d0e6f4a10"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string                `json:"code" example:"VALIDATION_ERROR"`
	Message string                `json:"message" example:"request validation failed"`
	Fields  []dto.ValidationError `json:"fields,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeValidationError reports every violated field in one 400 response.
func writeValidationError(c *fiber.Ctx, errs dto.ValidationErrors) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_ERROR",
			Message: "request validation failed",
			Fields:  errs,
		},
	}
	return c.Status(fiber.StatusBadRequest).JSON(res)
}

// writeJSON encodes v with dto.Encode. An encoding failure is returned
// untouched so the ErrorHandler reports it as a SERIALIZATION_ERROR.
func writeJSON(c *fiber.Ctx, status int, v any) error {
	b, err := dto.Encode(v)
	if err != nil {
		return err
	}
	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(b)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if errs, ok := dto.AsValidationErrors(err); ok {
			return writeValidationError(c, errs)
		}

		var serr *dto.SerializationError
		if errors.As(err, &serr) {
			return writeError(c, fiber.StatusInternalServerError, "SERIALIZATION_ERROR", "response could not be encoded")
		}

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
