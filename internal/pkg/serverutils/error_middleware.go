package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"consultly-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware translates domain errors into HTTP responses:
// validation -> 400, not found -> 404, everything else -> 500. Fiber's own
// errors keep their status code.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "Internal server error"

		switch {
		case apperror.IsValidation(err):
			status = fiber.StatusBadRequest
			message = err.Error()
		case apperror.IsNotFound(err):
			status = fiber.StatusNotFound
			message = err.Error()
		default:
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
				message = fiberErr.Message
			}
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}
}
