package service

import (
	"context"
	"strings"
	"time"

	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/internal/core/ports"
)

type ReportService struct {
	store    ports.Store
	gate     *DayGate
	clock    ports.Clock
	location *time.Location
}

func NewReportService(store ports.Store, gate *DayGate, clock ports.Clock, location *time.Location) *ReportService {
	return &ReportService{store: store, gate: gate, clock: clock, location: location}
}

// GetReport returns today's report, or an empty one when nothing was saved yet.
func (s *ReportService) GetReport(ctx context.Context) (domain.Report, error) {
	today := domain.DayKey(s.clock.Now(), s.location)
	report, _, err := s.store.Reports().Get(ctx, today)
	if err != nil {
		return domain.Report{}, err
	}
	return report, nil
}

// SaveReport upserts today's report.
func (s *ReportService) SaveReport(ctx context.Context, summary string) (domain.Report, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return domain.Report{}, &domain.ValidationError{Field: "summary", Reason: "must not be empty"}
	}

	defer s.gate.shared()()

	now := s.clock.Now()
	report := domain.Report{
		Date:       domain.DayKey(now, s.location),
		Summary:    summary,
		ReportTime: &now,
	}

	err := s.store.InTx(ctx, func(repos ports.Repositories) error {
		_, found, err := repos.Reports().Get(ctx, report.Date)
		if err != nil {
			return err
		}
		if found {
			return repos.Reports().Update(ctx, report)
		}
		return repos.Reports().Insert(ctx, report)
	})
	if err != nil {
		return domain.Report{}, err
	}
	return report, nil
}

var _ ports.ReportService = (*ReportService)(nil)
