package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/MotorDesk/policy-extraction-backend/errors"
	"github.com/MotorDesk/policy-extraction-backend/logger"
	"github.com/MotorDesk/policy-extraction-backend/services"
	"github.com/MotorDesk/policy-extraction-backend/types"
)

// Drainer runs the pull loop for a company holding an already-acquired lock.
type Drainer interface {
	DrainWithLock(ctx context.Context, req types.StartProcessingRequest, handle *services.LockHandle) int
}

var _ Drainer = (*services.DrainService)(nil)
var _ services.TriggerLimiter = (*services.RateLimitService)(nil)

// ProcessingHandler exposes the drain-trigger and status endpoints.
type ProcessingHandler struct {
	registry *services.LockRegistry
	drainer  Drainer
	limiter  services.TriggerLimiter
}

func NewProcessingHandler(registry *services.LockRegistry, drainer Drainer, limiter services.TriggerLimiter) *ProcessingHandler {
	return &ProcessingHandler{
		registry: registry,
		drainer:  drainer,
		limiter:  limiter,
	}
}

// StartProcessing triggers a drain run for a company. The lock is acquired
// here, before the background goroutine starts, so concurrent triggers for
// the same company cannot race: exactly one caller gets "started" and the
// rest get "already_processing".
func (h *ProcessingHandler) StartProcessing(c *gin.Context) {
	log := logger.GetLogger()

	var req types.StartProcessingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.Error(apperrors.ValidationFailed("invalid request body", err.Error())); err != nil {
			log.Errorw("Failed to attach error to context", "error", err)
		}
		return
	}

	if h.limiter != nil {
		allowed, retryAfter, err := h.limiter.AllowTrigger(c.Request.Context(), req.CompanyID)
		if err != nil {
			// Rate limiting is best effort; a broken limiter must not stall
			// ingestion.
			log.Warnw("Trigger rate limiter unavailable", "company_id", req.CompanyID, "error", err)
		} else if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			if err := c.Error(apperrors.RateLimitExceeded(
				fmt.Sprintf("too many processing triggers for company %s", req.CompanyID))); err != nil {
				log.Errorw("Failed to attach error to context", "error", err)
			}
			return
		}
	}

	handle := h.registry.TryAcquire(req.CompanyID)
	if handle == nil {
		c.JSON(http.StatusOK, types.StartProcessingResponse{
			Status:    types.ProcessingAlready,
			CompanyID: req.CompanyID,
			Message:   fmt.Sprintf("Company %s is already being processed", req.CompanyID),
		})
		return
	}

	// The drain outlives this request; it carries its own context so a client
	// disconnect does not abort the run.
	go h.drainer.DrainWithLock(context.Background(), req, handle)

	c.JSON(http.StatusOK, types.StartProcessingResponse{
		Status:    types.ProcessingStarted,
		CompanyID: req.CompanyID,
		Message:   "Pull-based processing started",
	})
}

// GetProcessingStatus reports whether a drain run is in flight for a company.
func (h *ProcessingHandler) GetProcessingStatus(c *gin.Context) {
	companyID := c.Param("company_id")
	if companyID == "" {
		if err := c.Error(apperrors.ValidationFailed("missing company id", "company_id path parameter is required")); err != nil {
			logger.GetLogger().Errorw("Failed to attach error to context", "error", err)
		}
		return
	}

	c.JSON(http.StatusOK, types.ProcessingStatusResponse{
		CompanyID:    companyID,
		IsProcessing: h.registry.IsLocked(companyID),
	})
}
