package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MotorDesk/policy-extraction-backend/config"
)

// TriggerLimiter bounds how often a company may trigger a drain run.
type TriggerLimiter interface {
	AllowTrigger(ctx context.Context, companyID string) (bool, time.Duration, error)
}

// RateLimitService implements TriggerLimiter on Redis. Each company gets a
// fixed window counter; once the counter passes the configured limit the
// caller is told how long until the window resets.
type RateLimitService struct {
	redis     *redis.Client
	keyPrefix string
	limit     int
	window    time.Duration
}

func NewRateLimitService(client *redis.Client, cfg *config.RateLimitConfig) *RateLimitService {
	return &RateLimitService{
		redis:     client,
		keyPrefix: "trigger_limit:",
		limit:     cfg.TriggerRequestsPerMinute,
		window:    time.Duration(cfg.WindowSeconds) * time.Second,
	}
}

// AllowTrigger counts one trigger attempt for companyID and reports whether
// it stays within the window limit. A nil Redis client disables limiting.
func (s *RateLimitService) AllowTrigger(ctx context.Context, companyID string) (bool, time.Duration, error) {
	if s.redis == nil {
		return true, 0, nil
	}

	rKey := s.keyPrefix + companyID

	pipe := s.redis.Pipeline()
	incr := pipe.Incr(ctx, rKey)
	pipe.Expire(ctx, rKey, s.window)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, 0, err
	}

	if incr.Val() > int64(s.limit) {
		ttl, err := s.redis.TTL(ctx, rKey).Result()
		if err != nil {
			return false, 0, err
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
