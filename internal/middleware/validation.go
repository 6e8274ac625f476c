package middleware

import (
	"homework-grader/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidateReportID rejects a malformed :id path parameter before the handler runs
func (vm *ValidationMiddleware) ValidateReportID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateReportID(id); len(errs) > 0 {
			return errs // handled by ErrorHandler
		}
		c.Locals("validated_report_id", id)
		return c.Next()
	}
}
