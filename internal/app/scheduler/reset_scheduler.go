// Package scheduler runs the day reset on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"time"

	cronlib "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/internal/core/ports"
)

// cronParser parses standard 5-field cron expressions plus descriptors such as @daily.
var cronParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow | cronlib.Descriptor,
)

type Config struct {
	Schedule string
	Location *time.Location
	Timeout  time.Duration
	Archive  ports.ArchiveService
	Logger   *zap.Logger
}

type ResetScheduler struct {
	cron    *cronlib.Cron
	archive ports.ArchiveService
	logger  *zap.Logger
	timeout time.Duration
}

func NewResetScheduler(cfg Config) (*ResetScheduler, error) {
	if cfg.Archive == nil {
		return nil, errors.New("scheduler: archive service is required")
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	s := &ResetScheduler{
		cron:    cronlib.New(cronlib.WithLocation(location), cronlib.WithParser(cronParser)),
		archive: cfg.Archive,
		logger:  logger,
		timeout: timeout,
	}
	if _, err := s.cron.AddFunc(cfg.Schedule, s.RunOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ResetScheduler) Start() {
	s.cron.Start()
	s.logger.Info("reset scheduler started")
}

// Stop waits for a running reset to finish or ctx to expire.
func (s *ResetScheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("reset scheduler stop timed out", zap.Error(ctx.Err()))
	}
	s.logger.Info("reset scheduler stopped")
}

// RunOnce performs one scheduled reset. A day already archived by hand is not an error.
func (s *ResetScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result, err := s.archive.ResetDay(ctx)
	switch {
	case errors.Is(err, domain.ErrHistoryConflict):
		s.logger.Info("scheduled reset skipped, day already archived", zap.Error(err))
	case err != nil:
		s.logger.Error("scheduled reset failed", zap.Error(err))
	case !result.Archived:
		s.logger.Info("scheduled reset found an empty day")
	default:
		s.logger.Info("scheduled reset archived day",
			zap.String("date", result.Entry.Date),
			zap.Int("tasks", len(result.Entry.Tasks)),
		)
	}
}

// NextRun parses expr and returns the next activation after t.
func NextRun(expr string, after time.Time) (time.Time, error) {
	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.Next(after), nil
}
