package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/pkg/logger"
)

// LoggerMiddleware logs every request to the api category with latency and
// status code.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		data := map[string]interface{}{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
			"ip":      c.IP(),
		}

		if status >= fiber.StatusInternalServerError {
			logger.Error(logger.CategoryAPI, "request", "Request failed", err, data)
		} else {
			logger.Info(logger.CategoryAPI, "request", "Request handled", data)
		}

		return err
	}
}
