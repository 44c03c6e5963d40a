package middleware

import (
	"strings"

	"wrapsite_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware valideert het Bearer-token en zet de claims in
// c.Locals("user"). Alleen de admin-routes gebruiken dit; de publieke site
// is niet geauthenticeerd.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header",
			})
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}
