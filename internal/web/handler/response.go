package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the body of a successful mutating API call.
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      uint64 `json:"id,omitempty"`
}

// Success writes {"success":true}, with the id of a created row when given.
func Success(c *fiber.Ctx, id ...uint64) error {
	resp := SuccessResponse{Success: true}
	if len(id) > 0 {
		resp.ID = id[0]
	}

	return c.JSON(resp)
}

// JSONError writes an error body with the given status.
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// ErrorHandler renders errors returned by handlers as JSON.
// Errors other than *fiber.Error are reported as a generic internal error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}

	return JSONError(c, code, message)
}

// ParseID reads the numeric :id route parameter.
// ok is false when the parameter is not a positive integer, so no row can match it.
func ParseID(c *fiber.Ctx) (id uint64, ok bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}

// ValidationMessage turns validator errors into a single readable message.
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Invalid request"
	}

	ve := validationErrors[0]

	return "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
}
