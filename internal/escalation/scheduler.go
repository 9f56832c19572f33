package escalation

import (
	"context"
	"sync"
	"time"

	"resolveit/backend/internal/config"

	"go.uber.org/zap"
)

// Scheduler fires the escalation sweep on a fixed wall-clock cadence,
// aligned to the top of the interval. Firings never overlap: ticks that
// arrive while a sweep is still running are dropped by the ticker, so a
// slow sweep defers the next one instead of running concurrently.
type Scheduler struct {
	Service  *Service
	Interval time.Duration
	Logger   *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a scheduler with the default hourly cadence.
func NewScheduler(svc *Service, log *zap.Logger) *Scheduler {
	return &Scheduler{
		Service:  svc,
		Interval: config.SweepInterval,
		Logger:   log,
		stopChan: make(chan struct{}),
	}
}

// Start blocks until the context is cancelled or Stop is called. The
// first sweep fires at the next interval boundary (top of the hour for
// the default cadence), subsequent sweeps every interval after that.
func (s *Scheduler) Start(ctx context.Context) {
	s.Logger.Info("escalation scheduler started",
		zap.Duration("interval", s.Interval))

	first := time.NewTimer(time.Until(s.nextBoundary(time.Now())))
	defer first.Stop()

	select {
	case <-ctx.Done():
		s.Logger.Info("escalation scheduler stopped before first sweep")
		return
	case <-s.stopChan:
		return
	case <-first.C:
	}
	s.runSweep()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("escalation scheduler received shutdown signal")
			return
		case <-s.stopChan:
			s.Logger.Info("escalation scheduler stopped")
			return
		case <-ticker.C:
			s.runSweep()
		}
	}
}

// Stop terminates the scheduling loop. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

// runSweep performs one sweep. A total failure (the candidate query
// itself) is logged and the scheduler simply waits for the next tick.
func (s *Scheduler) runSweep() {
	start := time.Now()
	if err := s.Service.Sweep(start); err != nil {
		s.Logger.Error("escalation sweep failed", zap.Error(err))
		return
	}
	s.Logger.Debug("escalation sweep finished",
		zap.Duration("took", time.Since(start)))
}

// nextBoundary returns the next wall-clock instant aligned to the sweep
// interval, e.g. the next top of the hour for an hourly cadence.
func (s *Scheduler) nextBoundary(now time.Time) time.Time {
	return now.Truncate(s.Interval).Add(s.Interval)
}
