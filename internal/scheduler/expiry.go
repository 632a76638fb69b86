// Package scheduler runs the periodic sweep that deactivates jobs past
// their application deadline, so listings only ever show live postings.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/workhive/workhive-backend/internal/repository"
	"go.uber.org/zap"
)

type ExpirySweeper struct {
	cron   *cron.Cron
	jobs   *repository.JobRepository
	spec   string
	logger *zap.Logger
}

func NewExpirySweeper(jobs *repository.JobRepository, logger *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		cron:   cron.New(),
		jobs:   jobs,
		spec:   "@every 1h",
		logger: logger,
	}
}

// Start registers the sweep and runs one immediately so stale jobs from
// before a restart disappear without waiting for the first tick.
func (s *ExpirySweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	go s.sweep()
	return nil
}

func (s *ExpirySweeper) Stop() {
	s.cron.Stop()
}

func (s *ExpirySweeper) sweep() {
	n, err := s.jobs.DeactivateExpired(time.Now())
	if err != nil {
		s.logger.Error("expiry sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("deactivated expired jobs", zap.Int64("count", n))
	}
}
