package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sharpcut.app/configs"
	"sharpcut.app/pkg/token"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's identity in locals for the handlers.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token format"})
	}

	claims, err := token.Parse(configs.JWTSecret(), strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("userID", claims.UserID)
	c.Locals("userEmail", claims.Email)
	c.Locals("userName", claims.Name)
	return c.Next()
}
