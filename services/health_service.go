package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MotorDesk/policy-extraction-backend/logger"
	"github.com/MotorDesk/policy-extraction-backend/types"
)

// HealthService aggregates readiness state for the service's dependencies.
// The record store and extraction provider are deliberately not probed here;
// their failures surface per drain run, not in readiness.
type HealthService struct {
	redisClient *redis.Client
	registry    *LockRegistry
	version     string
	log         *zap.SugaredLogger
}

func NewHealthService(redisClient *redis.Client, registry *LockRegistry, version string) *HealthService {
	return &HealthService{
		redisClient: redisClient,
		registry:    registry,
		version:     version,
		log:         logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	redisStatus := h.checkRedis(ctx)
	components["redis"] = redisStatus
	if redisStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDegraded
	}

	components["lock_registry"] = types.HealthComponent{Status: types.HealthStatusUp}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	if h.redisClient == nil {
		return types.HealthComponent{
			Status:  types.HealthStatusUp,
			Details: "Not configured, trigger rate limiting disabled",
		}
	}
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}
	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
