package middleware

import (
	"strings"

	"catalog/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// HeaderAPIKey carries the client credential.
const HeaderAPIKey = "X-API-Key"

const (
	localAPIKey  = "apiKey"
	localIsAdmin = "isAdmin"
)

// APIKeyRequired is a Fiber middleware that accepts only keys from validKeys.
// A key containing "admin" is flagged as an administrator.
func APIKeyRequired(validKeys []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(validKeys))
	for _, key := range validKeys {
		allowed[key] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		apiKey := c.Get(HeaderAPIKey)
		if apiKey == "" {
			return apperror.Authentication("API key is required. Please enter a valid API key")
		}
		if _, ok := allowed[apiKey]; !ok {
			return apperror.Authorization("Invalid API key. Access denied.")
		}

		apiKey = utils.CopyString(apiKey)
		c.Locals(localAPIKey, apiKey)
		c.Locals(localIsAdmin, strings.Contains(apiKey, "admin"))

		return c.Next()
	}
}

// APIKey returns the credential accepted by APIKeyRequired, if any.
func APIKey(c *fiber.Ctx) string {
	key, _ := c.Locals(localAPIKey).(string)
	return key
}

// IsAdmin reports whether the accepted credential is an administrator key.
func IsAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals(localIsAdmin).(bool)
	return admin
}
