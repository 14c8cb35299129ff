package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/gridtrace/gridtrace/internal/pkg/errors"
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorResponse creates a standardized JSON error response.
func errorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorResponse{
		Error:   statusName(statusCode),
		Message: message,
	})
}

// serviceError renders a service-layer error. Known AppErrors keep their
// status and message; anything else is logged and becomes a 500 with the
// fallback message.
func serviceError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return errorResponse(c, appErr.StatusCode, appErr.Message)
	}
	logger.Error(fallback, zap.Error(err))
	return errorResponse(c, fiber.StatusInternalServerError, fallback)
}

func statusName(statusCode int) string {
	switch statusCode {
	case fiber.StatusBadRequest:
		return "Bad Request"
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusUnprocessableEntity:
		return "Unprocessable Entity"
	case fiber.StatusTooManyRequests:
		return "Too Many Requests"
	case fiber.StatusInternalServerError:
		return "Internal Server Error"
	}
	return "Error"
}

// parseIDParam parses a UUID path parameter.
func parseIDParam(c *fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, errorResponse(c, fiber.StatusBadRequest, "Invalid "+key)
	}
	return id, nil
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(c *fiber.Ctx, key string, defaultValue int) int {
	val := c.Query(key)
	if val == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return intVal
}
