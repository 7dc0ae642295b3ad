package app

import (
	"context"
	"time"

	"github.com/mwatari/lesson_scheduler/internal/service"
	"go.uber.org/zap"
)

// Provisional holds are data-level deadlines, not scheduled callbacks; the
// sweep interval bounds how stale an expired hold can stay visible.
const expirySweepInterval = time.Minute

// Scheduler runs the background provisional-expiry sweep.
type Scheduler struct {
	lessons  *service.LessonService
	logger   *zap.Logger
	stopChan chan struct{}
}

func NewScheduler(lessons *service.LessonService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		lessons:  lessons,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runExpirySweep(ctx)
}

func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

func (s *Scheduler) runExpirySweep(ctx context.Context) {
	// Once at startup, then on the interval.
	s.sweep(ctx)

	ticker := time.NewTicker(expirySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Expiry sweep stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Expiry sweep cancelled")
			return
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	if _, err := s.lessons.ExpireProvisional(ctx); err != nil {
		s.logger.Error("Failed to expire provisional holds", zap.Error(err))
	}
}
