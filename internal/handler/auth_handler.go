package handler

import (
	"time"

	"medread/internal/config"
	"medread/internal/domain"
	"medread/internal/dto"
	"medread/internal/logger"
	"medread/internal/middleware"
	"medread/internal/service"
	"medread/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
	authCfg     config.AuthConfig
}

func NewAuthHandler(authService service.AuthService, validator *validation.Validator, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		authCfg:     authCfg,
	}
}

// Login exchanges a broker session id for a local session.
// @Summary Exchange external session
// @Description Resolves the broker session, upserts the user and issues a session token (cookie and body).
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "External session id"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Missing session_id"
// @Failure 401 {object} middleware.ErrorResponse "Broker rejected the session"
// @Router /auth/session [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}
	if errs := h.validator.ValidateLoginRequest(req.SessionID); len(errs) > 0 {
		return errs
	}

	result, err := h.authService.Login(c.UserContext(), req.SessionID)
	if err != nil {
		return err
	}

	c.Cookie(h.sessionCookie(result.Token, result.ExpiresAt))
	return c.JSON(dto.LoginResponse{
		UserResponse: dto.ToUserResponse(result.User),
		SessionToken: result.Token,
	})
}

// Me returns the authenticated user.
// @Summary Current user
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToUserResponse(user))
}

// Logout revokes the presented token and clears the cookie. It succeeds without a token.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := middleware.TokenFromRequest(c, h.authCfg.CookieName)
	if err := h.authService.Logout(c.UserContext(), token); err != nil {
		logger.Get().Error("Failed to revoke session token", zap.Error(err))
		return err
	}

	c.Cookie(h.sessionCookie("", time.Now().Add(-time.Hour)))
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	// Max-Age follows the stored session expiry so both cookie attributes agree.
	maxAge := int(time.Until(expires).Seconds())
	if value == "" || maxAge <= 0 {
		maxAge = -1
	}
	return &fiber.Cookie{
		Name:     h.authCfg.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	}
}
