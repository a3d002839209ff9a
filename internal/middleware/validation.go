package middleware

import (
	"strconv"

	"medread/internal/domain"
	"medread/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedCountKey    = "validated_count"
	ValidatedCategoryKey = "validated_category"
)

// ValidationMiddleware validates query parameters before handlers run.
type ValidationMiddleware struct {
	validator    *validation.Validator
	defaultCount int
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator, defaultCount int) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator, defaultCount: defaultCount}
}

// ValidateCountQuery parses ?count= (default when absent) and stores it under ValidatedCountKey.
func (vm *ValidationMiddleware) ValidateCountQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		count := vm.defaultCount
		if raw := c.Query("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return domain.ValidationErrors{domain.NewInvalidFormatError("count", raw)}
			}
			count = parsed
		}
		if errs := vm.validator.ValidateCount("count", count); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedCountKey, count)
		return c.Next()
	}
}

// ValidateCategoryQuery checks the optional ?category= filter.
func (vm *ValidationMiddleware) ValidateCategoryQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")
		if errs := vm.validator.ValidateCategoryFilter(category); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedCategoryKey, category)
		return c.Next()
	}
}
