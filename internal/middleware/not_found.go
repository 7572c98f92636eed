package middleware

import (
	"fmt"

	"catalog/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

const localUnmatched = "routeUnmatched"

// RouteNotFound is the catch-all handler for requests that matched no route.
// Register it last.
func RouteNotFound(c *fiber.Ctx) error {
	c.Locals(localUnmatched, true)
	return apperror.NotFound(fmt.Sprintf("Route %s not found", c.OriginalURL()))
}
