package service

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/internal/core/ordering"
	"github.com/tonandton/report-tracking/internal/core/ports"
)

const (
	DefaultHistoryLimit = 30
	DefaultKPIDays      = 7
)

type ArchiveOptions struct {
	HistoryDefaultLimit int
	HistoryMaxLimit     int
	KPIDays             int
}

// ArchiveService moves a finished day into history and serves the history log.
type ArchiveService struct {
	store    ports.Store
	gate     *DayGate
	clock    ports.Clock
	location *time.Location
	opts     ArchiveOptions
}

func NewArchiveService(store ports.Store, gate *DayGate, clock ports.Clock, location *time.Location, opts ArchiveOptions) *ArchiveService {
	if opts.HistoryDefaultLimit <= 0 {
		opts.HistoryDefaultLimit = DefaultHistoryLimit
	}
	if opts.HistoryMaxLimit < opts.HistoryDefaultLimit {
		opts.HistoryMaxLimit = opts.HistoryDefaultLimit
	}
	if opts.KPIDays <= 0 {
		opts.KPIDays = DefaultKPIDays
	}
	return &ArchiveService{store: store, gate: gate, clock: clock, location: location, opts: opts}
}

// ResetDay archives the live tasks and today's report into a single history entry and clears
// them, all inside one transaction. An empty day writes nothing. A second reset on the same
// date fails with domain.ErrHistoryConflict and leaves the first entry untouched.
func (s *ArchiveService) ResetDay(ctx context.Context) (domain.ResetResult, error) {
	defer s.gate.exclusive()()

	now := s.clock.Now()
	today := domain.DayKey(now, s.location)

	var result domain.ResetResult
	err := s.store.InTx(ctx, func(repos ports.Repositories) error {
		exists, err := repos.History().Exists(ctx, today)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewHistoryConflictError(today)
		}

		tasks, err := repos.Tasks().List(ctx)
		if err != nil {
			return err
		}
		report, _, err := repos.Reports().Get(ctx, today)
		if err != nil {
			return err
		}

		if len(tasks) == 0 && report.IsEmpty() {
			return nil
		}

		entry := domain.HistoryEntry{
			Date:       today,
			Tasks:      ordering.Sort(tasks),
			Report:     report.Summary,
			ReportDate: report.ReportTime,
			ArchivedAt: now,
		}
		if err := repos.History().Append(ctx, entry); err != nil {
			return err
		}

		if _, err := repos.Tasks().DeleteAll(ctx); err != nil {
			return err
		}
		if err := repos.Reports().Delete(ctx, today); err != nil {
			return err
		}

		result = domain.ResetResult{Archived: true, Entry: &entry}
		return nil
	})
	if err != nil {
		return domain.ResetResult{}, err
	}

	if result.Archived {
		zap.L().Info("day archived",
			zap.String("date", today),
			zap.Int("tasks", len(result.Entry.Tasks)),
			zap.Bool("has_report", result.Entry.Report != ""),
		)
	}
	return result, nil
}

// ListHistory returns archived days newest first. Non-positive limits use the default,
// larger ones are clamped to the configured maximum.
func (s *ArchiveService) ListHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	return s.store.History().List(ctx, s.clampLimit(limit))
}

// KPI returns per-day completion for the newest days, oldest first.
func (s *ArchiveService) KPI(ctx context.Context, days int) ([]domain.KPIPoint, error) {
	if days <= 0 {
		days = s.opts.KPIDays
	}
	entries, err := s.store.History().List(ctx, s.clampLimit(days))
	if err != nil {
		return nil, err
	}

	points := make([]domain.KPIPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, domain.CompletionPoint(entry))
	}
	slices.Reverse(points)
	return points, nil
}

// Export dumps live tasks, live reports and the whole history. The shared gate keeps a reset
// from landing between the three reads.
func (s *ArchiveService) Export(ctx context.Context) (domain.Export, error) {
	defer s.gate.shared()()

	export := domain.Export{ExportedAt: s.clock.Now()}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks, err := s.store.Tasks().List(gctx)
		export.Tasks = ordering.Sort(tasks)
		return err
	})
	g.Go(func() error {
		reports, err := s.store.Reports().List(gctx)
		export.Reports = reports
		return err
	})
	g.Go(func() error {
		history, err := s.store.History().List(gctx, 0)
		export.History = history
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Export{}, err
	}
	return export, nil
}

func (s *ArchiveService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.opts.HistoryDefaultLimit
	}
	if limit > s.opts.HistoryMaxLimit {
		return s.opts.HistoryMaxLimit
	}
	return limit
}

var _ ports.ArchiveService = (*ArchiveService)(nil)
