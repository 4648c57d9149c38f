package middleware

import (
	"strings"

	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionKey is the Locals key under which the authenticated session is stored.
const SessionKey = "session"

// AuthRequired is a Fiber middleware that requires a valid, unrevoked bearer
// token. The resolved session is stored in Locals for downstream handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		session, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(SessionKey, session)
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by AuthRequired, or nil when the
// request was not authenticated.
func SessionFromCtx(c *fiber.Ctx) *services.Session {
	session, _ := c.Locals(SessionKey).(*services.Session)
	return session
}
