package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"quest_admin/internal/metrics"
	"quest_admin/pkg/logger"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const (
	StoreUp           = "up"
	StoreDown         = "down"
	StoreUnconfigured = "unconfigured"

	defaultCheckInterval = 30 * time.Second
	checkTimeout         = 5 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor tracks whether the record store is reachable. Handlers consult it to
// decide between live data and the demo dataset.
type Monitor struct {
	pinger    Pinger
	interval  time.Duration
	available atomic.Bool
	scheduler gocron.Scheduler
}

func NewMonitor(pinger Pinger, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	return &Monitor{
		pinger:   pinger,
		interval: interval,
	}
}

// NewUnconfiguredMonitor reports the store as permanently unavailable.
func NewUnconfiguredMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) Configured() bool {
	return m.pinger != nil
}

func (m *Monitor) Available() bool {
	return m.pinger != nil && m.available.Load()
}

func (m *Monitor) State() string {
	switch {
	case m.pinger == nil:
		return StoreUnconfigured
	case m.available.Load():
		return StoreUp
	default:
		return StoreDown
	}
}

// Check pings the store once and records the result.
func (m *Monitor) Check(ctx context.Context) bool {
	if m.pinger == nil {
		metrics.StoreUp.Set(0)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	err := m.pinger.Ping(ctx)
	up := err == nil
	if m.available.Swap(up) != up {
		if up {
			logger.Logger().Info("record store reachable")
		} else {
			logger.Logger().Warn("record store unreachable", zap.Error(err))
		}
	}

	if up {
		metrics.StoreUp.Set(1)
	} else {
		metrics.StoreUp.Set(0)
	}

	return up
}

func (m *Monitor) Start() error {
	if m.pinger == nil {
		metrics.StoreUp.Set(0)
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(m.interval),
		gocron.NewTask(func() {
			m.Check(context.Background())
		}),
		gocron.WithName("store_health_check"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create health check job: %w", err)
	}

	scheduler.Start()
	m.scheduler = scheduler
	return nil
}

func (m *Monitor) Stop() error {
	if m.scheduler == nil {
		return nil
	}
	return m.scheduler.Shutdown()
}
