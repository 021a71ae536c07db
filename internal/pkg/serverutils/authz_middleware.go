package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"consultly-be/internal/pkg/authz"
)

// RequireWriteAccess gates mutating routes behind the content policy. Must
// run after JwtMiddleware, which stores the email claim in locals.
func RequireWriteAccess(policy authz.Policy) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		email, _ := ctx.Locals("email").(string)
		if !policy.CanWrite(email) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Write access denied"})
		}
		return ctx.Next()
	}
}
