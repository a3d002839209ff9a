package handler

import (
	"context"
	"time"

	"medread/internal/domain"
	"medread/internal/dto"
	"medread/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler builds the readiness checks. cache may be nil when Redis is disabled.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health
// @Summary API root
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Message: "MedRead API v1.0", Status: "healthy"})
}

// Ready
// @Summary Readiness of the database and cache
// @Tags system
// @Produce json
// @Success 200 {object} dto.ReadinessResponse
// @Failure 503 {object} dto.ReadinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readinessTimeout)
	defer cancel()

	resp := dto.ReadinessResponse{Status: "ready", Database: "up", Cache: "disabled"}
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			logger.Get().Warn("Database readiness check failed", zap.Error(err))
			resp.Status, resp.Database = "unavailable", "down"
		}
	}
	if h.cache != nil {
		resp.Cache = "up"
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache readiness check failed", zap.Error(err))
			resp.Status, resp.Cache = "unavailable", "down"
		}
	}

	if resp.Status != "ready" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
