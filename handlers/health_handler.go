package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MotorDesk/policy-extraction-backend/services"
	"github.com/MotorDesk/policy-extraction-backend/types"
)

// HealthHandler exposes the liveness/readiness probes and a detailed
// status view covering redis and the lock registry.
type HealthHandler struct {
	health *services.HealthService
}

func NewHealthHandler(health *services.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// LivenessCheck answers kubernetes liveness probes.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck answers kubernetes readiness probes. A degraded service
// (rate limiting unavailable) still accepts traffic.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	status := h.health.CheckHealth(c.Request.Context())
	if status.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

// DetailedHealth reports per-component status for operators.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.health.CheckHealth(c.Request.Context()))
}
