package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicer/internal/application/dto"
	"github.com/jhoicas/invoicer/pkg/jwt"
)

// LocalAPIClient key en c.Locals con el cliente de la API autenticado.
const LocalAPIClient = "api_client"

// AuthMiddleware valida el Bearer Token JWT y guarda el cliente en c.Locals.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "expected format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empty token"})
		}
		client, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid or expired token"})
		}
		c.Locals(LocalAPIClient, client)
		return c.Next()
	}
}

// GetAPIClient devuelve el cliente autenticado ("" si la API es pública).
func GetAPIClient(c *fiber.Ctx) string {
	v := c.Locals(LocalAPIClient)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
