package middleware

import (
	"strings"

	"medread/internal/domain"
	"medread/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserKey             = "user" // fiber.Ctx locals key holding *domain.User
)

// TokenFromRequest returns the bearer from the cookie, falling back to the Authorization header.
func TokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if token := c.Cookies(cookieName); token != "" {
		return token
	}
	authHeader := c.Get(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerSchema) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
	}
	return ""
}

// Protected resolves the caller through authService and stores the user in locals.
// Failures go to the ErrorHandler as 401s.
func Protected(authService service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.Authenticate(c.UserContext(), TokenFromRequest(c, cookieName))
		if err != nil {
			return err
		}
		c.Locals(UserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user set by Protected.
func CurrentUser(c *fiber.Ctx) (*domain.User, error) {
	user, ok := c.Locals(UserKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.NewUnauthenticatedError()
	}
	return user, nil
}
