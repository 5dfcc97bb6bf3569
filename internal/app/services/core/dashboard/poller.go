package dashboard

import (
	"context"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const pollerConcurrency = 8

// Poller periodically refreshes every registered dashboard, replacing the
// previously published profile each time.
type Poller struct {
	log      *zap.Logger
	registry contracts.DashboardRegistry
	interval time.Duration
	timeout  time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewPoller(log *zap.Logger, registry contracts.DashboardRegistry, interval, timeout time.Duration) *Poller {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Poller{
		log:      log,
		registry: registry,
		interval: interval,
		timeout:  timeout,
		stop:     make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (p *Poller) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(p.interval)

	p.log.Info("dashboard.Poller started", zap.Duration(constvars.LoggingDurationKey, p.interval))

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-p.stop:
				return
			case now := <-ticker.C:
				p.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		p.stopOnce.Do(func() { close(p.stop) })
	}
}

func (p *Poller) runOnce(ctx context.Context, now time.Time) {
	evicted := p.registry.EvictIdle(now)
	controllers := p.registry.Snapshot()

	p.log.Info("dashboard.Poller.runOnce tick",
		zap.Time("now", now),
		zap.Int(constvars.LoggingControllerCountKey, len(controllers)),
		zap.Int("evicted_count", evicted),
	)

	group := new(errgroup.Group)
	group.SetLimit(pollerConcurrency)
	for _, controller := range controllers {
		if !controller.IsMounted() {
			continue
		}
		group.Go(func() error {
			refreshCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			refreshCtx = utils.WithRequestID(refreshCtx, utils.GenerateRequestID())

			err := controller.Refresh(refreshCtx)
			if err != nil {
				p.log.Warn("dashboard.Poller refresh failed, keeping previous snapshot",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(refreshCtx)),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = group.Wait()
}
