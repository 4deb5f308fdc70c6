package handler

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cafe-finder/internal/usecase/dto"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker - зависимость, состояние которой отдаётся в health check
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler отвечает на /api/v1/health
type HealthHandler struct {
	checks map[string]HealthChecker
	logger *zap.Logger
}

// NewHealthHandler создает HealthHandler. checks может быть пустым:
// тогда сервис здоров, пока отвечает.
func NewHealthHandler(checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// Check godoc
// @Summary Health check
// @Description Состояние сервиса и его зависимостей (Redis, если включена статистика)
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status: "healthy",
		Time:   time.Now(),
	}

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()

		names := make([]string, 0, len(h.checks))
		for name := range h.checks {
			names = append(names, name)
		}
		sort.Strings(names)

		resp.Checks = make(map[string]string, len(names))
		for _, name := range names {
			if err := h.checks[name].Health(ctx); err != nil {
				h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
				resp.Checks[name] = "unavailable"
				resp.Status = "unhealthy"
				continue
			}
			resp.Checks[name] = "ok"
		}
	}

	if resp.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
