package middleware

import (
	"catalog/internal/apperror"
	"catalog/internal/models"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const localProductInput = "productInput"

// ValidateProduct rejects invalid product bodies before the handler runs and
// stores the normalized input for it.
func ValidateProduct(v *validation.ProductValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := validation.DecodeProduct(c.Body())
		if err != nil {
			return err
		}
		input, violations := v.Validate(raw)
		if len(violations) > 0 {
			return apperror.Validation("Validation failed", violations...)
		}
		c.Locals(localProductInput, input)
		return c.Next()
	}
}

// ProductInput returns the input stored by ValidateProduct.
func ProductInput(c *fiber.Ctx) (models.ProductInput, bool) {
	input, ok := c.Locals(localProductInput).(models.ProductInput)
	return input, ok
}
