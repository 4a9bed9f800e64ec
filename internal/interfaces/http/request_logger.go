package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/clinident/clinica-api/pkg/logger"
)

// LocalRequestID clave en c.Locals con el id de la petición.
const LocalRequestID = "request_id"

// RequestLogger asigna un id a cada petición y registra método, ruta,
// status y duración. El id se devuelve en la cabecera X-Request-Id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-Id", requestID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("requestId", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
