package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/auth"
	"github.com/clinident/clinica-api/internal/application/dto"
)

// APIKeyMiddleware protege los endpoints del frontend. Acepta el secreto
// compartido como query param api_key o cabecera X-Api-Key, o un JWT emitido
// por /auth/token como Bearer. Sin secreto configurado deja pasar todo.
// Rechaza antes de tocar la base de datos.
func APIKeyMiddleware(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authUC.Enabled() {
			return c.Next()
		}

		if token := bearerToken(c); token != "" && authUC.VerifyToken(token) {
			return c.Next()
		}

		key := c.Query("api_key")
		if key == "" {
			key = c.Get("X-Api-Key")
		}
		if authUC.VerifyKey(key) && key != "" {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
