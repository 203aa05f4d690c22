package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/lawncare/internal/config"
)

// Publisher sends the digest for the month containing at.
type Publisher interface {
	Publish(ctx context.Context, at time.Time) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	publisher Publisher
	cfg       config.DigestConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler running in the digest timezone.
func NewScheduler(cfg config.DigestConfig, publisher Publisher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := cron.New(cron.WithLocation(cfg.Location()))

	return &Scheduler{
		cron:      c,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the monthly digest and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.sendMonthlyDigest); err != nil {
		return fmt.Errorf("schedule monthly digest %q: %w", s.cfg.CronSchedule, err)
	}

	s.logger.Info("starting scheduler",
		zap.String("schedule", s.cfg.CronSchedule),
		zap.String("timezone", s.cfg.Location().String()))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// Entries exposes the registered jobs.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) sendMonthlyDigest() {
	s.logger.Info("generating monthly digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.publisher.Publish(ctx, time.Now().In(s.cfg.Location())); err != nil {
		s.logger.Error("failed to send monthly digest", zap.Error(err))
		return
	}
	s.logger.Info("monthly digest sent successfully")
}
