package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/carrito-api/pkg/logger"
)

// LocalRequestID llave del request ID en los locals de Fiber.
const LocalRequestID = "request_id"

// RequestID middleware: asigna un ID de correlación a cada petición
// (se respeta X-Request-ID si viene del cliente) y registra método,
// ruta, estado y duración al terminar.
func RequestID(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(LocalRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// GetRequestID devuelve el ID de correlación de la petición actual ("" si no hay).
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalRequestID).(string); ok {
		return id
	}
	return ""
}
