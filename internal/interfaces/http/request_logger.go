package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rrhh-api/pkg/logger"
)

// LocalLogger key del logger de la petición en c.Locals.
const LocalLogger = "logger"

// RequestLogger deja el logger en Locals para los handlers y registra cada petición
// al terminar: método, ruta, estado, latencia y usuario (si hubo auth).
func RequestLogger(log *logger.Logger) fiber.Handler {
	httpLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.Locals(LocalLogger, httpLog)

		err := c.Next()
		if err != nil {
			// El ErrorHandler de fiber aún no escribió la respuesta.
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := httpLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = httpLog.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = httpLog.Warn()
		}
		ev = ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start))
		if uid := GetUserID(c); uid != 0 {
			ev = ev.Int64("user_id", uid)
		}
		ev.Msg("request")
		return nil
	}
}

func loggerFrom(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(LocalLogger).(*logger.Logger); ok && l != nil {
		return l
	}
	return logger.Nop()
}
