package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrUnauthorized is returned by services when no authenticated user is
// attached to the request. It is the only error a user should ever see on the
// conversational path.
var ErrUnauthorized = errors.New("not authenticated")

// ErrNotFound covers missing or not-owned resources.
var ErrNotFound = errors.New("not found or access denied")

// ErrorHandlerMiddleware converts service errors into envelope responses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, verr.Error()))
		case errors.Is(err, ErrUnauthorized):
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, err.Error()))
		case errors.Is(err, ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return ctx.Status(ferr.Code).JSON(ErrorResponse(ferr.Code, ferr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
