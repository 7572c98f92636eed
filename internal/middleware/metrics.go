package middleware

import (
	"strconv"
	"time"

	"catalog/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// unmatchedPath labels requests that fell through to RouteNotFound.
const unmatchedPath = "unmatched"

// Metrics records request counts and durations labelled by route pattern.
// It must run outside RequestLogger so the response status is final.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.IncInFlight()
		defer m.DecInFlight()

		err := c.Next()

		path := unmatchedPath
		if unmatched, _ := c.Locals(localUnmatched).(bool); !unmatched {
			path = c.Route().Path
		}
		m.ObserveRequest(c.Method(), path, strconv.Itoa(c.Response().StatusCode()), time.Since(start))
		return err
	}
}
