package dashboard

import (
	"context"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

type registryEntry struct {
	controller *Controller
	lastSeen   time.Time
}

// Registry keeps one Controller per session id.
type Registry struct {
	deps    Dependencies
	idleTTL time.Duration

	mu          sync.Mutex
	controllers map[string]*registryEntry
}

func NewRegistry(deps Dependencies, idleTTL time.Duration) *Registry {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Registry{
		deps:        deps,
		idleTTL:     idleTTL,
		controllers: make(map[string]*registryEntry),
	}
}

// Acquire returns the session's controller, creating it on first use. The
// stored session is replaced so a rotated access token takes effect.
func (r *Registry) Acquire(session *models.Session) contracts.DashboardController {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.deps.Now()
	entry, ok := r.controllers[session.SessionID]
	if !ok {
		entry = &registryEntry{controller: NewController(session, r.deps)}
		r.controllers[session.SessionID] = entry
		r.deps.Log.Info("dashboard.Registry.Acquire created controller",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Int(constvars.LoggingControllerCountKey, len(r.controllers)),
		)
	} else {
		entry.controller.setSession(session)
	}
	entry.lastSeen = now
	return entry.controller
}

func (r *Registry) Release(sessionID string) {
	r.mu.Lock()
	delete(r.controllers, sessionID)
	r.mu.Unlock()
}

func (r *Registry) Snapshot() []contracts.DashboardController {
	r.mu.Lock()
	defer r.mu.Unlock()

	controllers := make([]contracts.DashboardController, 0, len(r.controllers))
	for _, entry := range r.controllers {
		controllers = append(controllers, entry.controller)
	}
	return controllers
}

// EvictIdle drops controllers whose session has expired or that were not
// acquired within the idle TTL, and returns how many were dropped. A
// non-positive TTL disables only the idle check.
func (r *Registry) EvictIdle(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for sessionID, entry := range r.controllers {
		session := entry.controller.currentSession()
		expired := session != nil && session.IsExpired(now)
		idle := r.idleTTL > 0 && now.Sub(entry.lastSeen) > r.idleTTL
		if !expired && !idle {
			continue
		}
		delete(r.controllers, sessionID)
		evicted++
		r.deps.Log.Info("dashboard.Registry.EvictIdle dropped controller",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Bool("session_expired", expired),
		)
	}
	return evicted
}

// StartEviction runs EvictIdle on its own ticker so stale controllers are
// dropped even when background polling is disabled. It returns a stop
// function to halt execution.
func (r *Registry) StartEviction(ctx context.Context, interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case now := <-ticker.C:
				r.EvictIdle(now)
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}

var (
	_ contracts.DashboardRegistry   = (*Registry)(nil)
	_ contracts.DashboardController = (*Controller)(nil)
)
