// Package scheduler runs the periodic re-sync of the cached collections
// against the upstream services.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"newsroom/internal/logger"
)

// Refresher is the slice of the workflow the scheduler drives.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler periodically refreshes the cached collections so the
// gateway converges on upstream state even without local writes.
type Scheduler struct {
	cron     *cron.Cron
	refresh  Refresher
	schedule string
	entryID  cron.EntryID
	timeout  time.Duration
}

// New creates a Scheduler. The schedule uses cron syntax, including
// the @every form.
func New(refresh Refresher, schedule string, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		refresh:  refresh,
		schedule: schedule,
		timeout:  timeout,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	id, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.refresh.Refresh(ctx); err != nil {
			// Stale data keeps serving; the next tick retries.
			logger.Warn("scheduled refresh failed", "error", err.Error())
			return
		}
		logger.Debug("scheduled refresh completed")
	})
	if err != nil {
		return err
	}
	s.entryID = id

	s.cron.Start()
	logger.Info("refresh scheduler started", "schedule", s.schedule)
	return nil
}

// NextRun reports when the next refresh will fire.
func (s *Scheduler) NextRun() time.Time {
	return s.cron.Entry(s.entryID).Next
}

// Stop stops the cron loop. Running jobs finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
