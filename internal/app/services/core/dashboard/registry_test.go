package dashboard

import (
	"context"
	"reservation-center/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRegistry_AcquireReturnsSameController(t *testing.T) {
	registry := NewRegistry(Dependencies{Log: zap.NewNop()}, time.Minute)

	first := registry.Acquire(&models.Session{SessionID: "s-1", AccessToken: "a"})
	second := registry.Acquire(&models.Session{SessionID: "s-1", AccessToken: "b"})
	other := registry.Acquire(&models.Session{SessionID: "s-2", AccessToken: "c"})

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, "b", first.(*Controller).currentSession().AccessToken)
	assert.Len(t, registry.Snapshot(), 2)

	registry.Release("s-1")
	assert.Len(t, registry.Snapshot(), 1)
	assert.NotSame(t, first, registry.Acquire(&models.Session{SessionID: "s-1"}))
}

func TestRegistry_EvictIdle(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := now
	registry := NewRegistry(Dependencies{Log: zap.NewNop(), Now: func() time.Time { return clock }}, 30*time.Minute)

	registry.Acquire(&models.Session{SessionID: "idle"})
	clock = now.Add(20 * time.Minute)
	registry.Acquire(&models.Session{SessionID: "active"})

	assert.Equal(t, 0, registry.EvictIdle(now.Add(30*time.Minute)))
	assert.Equal(t, 1, registry.EvictIdle(now.Add(31*time.Minute)))
	assert.Len(t, registry.Snapshot(), 1)

	disabled := NewRegistry(Dependencies{Log: zap.NewNop()}, 0)
	disabled.Acquire(&models.Session{SessionID: "s"})
	assert.Equal(t, 0, disabled.EvictIdle(time.Now().Add(24*time.Hour)))
}

func TestRegistry_EvictIdleDropsExpiredSessions(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	registry := NewRegistry(Dependencies{Log: zap.NewNop(), Now: func() time.Time { return start }}, 0)

	registry.Acquire(&models.Session{SessionID: "expiring", ExpiresAt: start.Add(time.Minute)})
	registry.Acquire(&models.Session{SessionID: "open-ended"})

	assert.Equal(t, 0, registry.EvictIdle(start.Add(30*time.Second)))
	assert.Equal(t, 1, registry.EvictIdle(start.Add(11*time.Minute)))

	remaining := registry.Snapshot()
	assert.Len(t, remaining, 1)
	assert.Equal(t, "open-ended", remaining[0].(*Controller).currentSession().SessionID)
}

func TestRegistry_StartEvictionRunsWithoutPoller(t *testing.T) {
	registry := NewRegistry(Dependencies{Log: zap.NewNop()}, time.Millisecond)
	registry.Acquire(&models.Session{SessionID: "idle"})

	stop := registry.StartEviction(context.Background(), 5*time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool { return len(registry.Snapshot()) == 0 }, time.Second, 5*time.Millisecond)
	stop()
}
