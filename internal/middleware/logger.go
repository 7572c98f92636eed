package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const unknownUserAgent = "Unknown User Agent"

// RequestLogger logs every request when it starts and when its response is ready.
// Errors returned by the chain are passed to the app's ErrorHandler here, so the
// completion line reports the final status whichever handler failed.
func RequestLogger(logger logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		timestamp := start.UTC().Format("2006-01-02T15:04:05.000Z07:00")
		method := c.Method()
		url := c.OriginalURL()
		userAgent := c.Get(fiber.HeaderUserAgent)
		if userAgent == "" {
			userAgent = unknownUserAgent
		}

		entry := logger.WithFields(logrus.Fields{
			"method": method,
			"path":   url,
		})
		entry.WithField("user_agent", userAgent).
			Infof("[%s] %s request to %s - User Agent: %s", timestamp, method, url, userAgent)

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				entry.WithError(err).Error("Error handler failed")
				if sendErr := c.SendStatus(fiber.StatusInternalServerError); sendErr != nil {
					entry.WithError(sendErr).Error("Failed to send fallback status")
				}
			}
		}

		elapsed := time.Since(start)
		entry.WithFields(logrus.Fields{
			"status":      c.Response().StatusCode(),
			"duration_ms": elapsed.Milliseconds(),
		}).Infof("[%s] %s request to %s completed in %dms", timestamp, method, url, elapsed.Milliseconds())

		return nil
	}
}
