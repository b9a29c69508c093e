package middleware

import (
	"fytai-health-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateArchiveID validates the archived result ID path parameter
func (vm *ValidationMiddleware) ValidateArchiveID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if errors := vm.validator.ValidateArchiveID(id); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		// Store validated value in context for handlers to use
		c.Locals("validated_archive_id", id)
		return c.Next()
	}
}
