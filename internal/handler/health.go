package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pipeline-tools/ccnotify/internal/config"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	config *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{config: cfg}
}

// HandleHealth returns health status
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":           "healthy",
		"service":          "ccnotify",
		"webhook_security": h.config.WebhookSecurityMode(),
		"trigger_rules":    h.config.Trigger.RulesPath,
	})
}
