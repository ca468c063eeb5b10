package services

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MotorDesk/policy-extraction-backend/config"
)

func triggerLimiterWithMock(t *testing.T, limit, windowSeconds int) (*RateLimitService, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	svc := NewRateLimitService(client, &config.RateLimitConfig{
		TriggerRequestsPerMinute: limit,
		WindowSeconds:            windowSeconds,
	})
	return svc, mock
}

func TestRateLimitService_AllowsWithinLimit(t *testing.T) {
	svc, mock := triggerLimiterWithMock(t, 5, 60)
	mock.ExpectIncr("trigger_limit:company-1").SetVal(3)
	mock.ExpectExpire("trigger_limit:company-1", time.Minute).SetVal(true)

	allowed, retryAfter, err := svc.AllowTrigger(context.Background(), "company-1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitService_BlocksOverLimit(t *testing.T) {
	svc, mock := triggerLimiterWithMock(t, 5, 60)
	mock.ExpectIncr("trigger_limit:company-1").SetVal(6)
	mock.ExpectExpire("trigger_limit:company-1", time.Minute).SetVal(true)
	mock.ExpectTTL("trigger_limit:company-1").SetVal(42 * time.Second)

	allowed, retryAfter, err := svc.AllowTrigger(context.Background(), "company-1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 42*time.Second, retryAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitService_RedisErrorPropagates(t *testing.T) {
	svc, mock := triggerLimiterWithMock(t, 5, 60)
	mock.ExpectIncr("trigger_limit:company-1").SetErr(assert.AnError)

	_, _, err := svc.AllowTrigger(context.Background(), "company-1")
	assert.Error(t, err)
}

func TestRateLimitService_NilClientDisablesLimiting(t *testing.T) {
	svc := NewRateLimitService(nil, &config.RateLimitConfig{TriggerRequestsPerMinute: 1, WindowSeconds: 60})

	for i := 0; i < 10; i++ {
		allowed, _, err := svc.AllowTrigger(context.Background(), "company-1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
