// FILE: internal/controller/health_controller.go
package controller

import (
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	GetHealth(ctx *fiber.Ctx) error
}

type healthController struct {
	probeService service.IProbeService
}

func NewHealthController(probeService service.IProbeService) IHealthController {
	return &healthController{probeService: probeService}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.GetHealth)
}

// GetHealth reports the backend's own liveness plus the last probed state of
// the upstream agent. demo_mode tells the frontend whether conversations will
// be simulated locally.
func (c *healthController) GetHealth(ctx *fiber.Ctx) error {
	status := c.probeService.Status()
	return ctx.JSON(dto.HealthResponse{
		Status:           "healthy",
		Service:          "Digital Sales Agent Backend",
		AgentStatus:      status.AgentStatus,
		ElevenLabsStatus: status.ElevenLabsStatus,
		DemoMode:         status.AgentStatus != "connected",
	})
}
