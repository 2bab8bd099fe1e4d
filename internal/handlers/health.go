package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/config"
	"github.com/muscleflow/muscleflow/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthHandler handles the health route
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
	Log *zap.Logger
}

// Health handles GET /api/health
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)
	if result.Status != "healthy" {
		h.Log.Warn("health check failed", zap.String("error", result.ErrorMessage))
		return c.Status(fiber.StatusServiceUnavailable).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
