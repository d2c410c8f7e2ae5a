package ports

import (
	"context"

	"github.com/tonandton/report-tracking/internal/core/domain"
)

// ReportRepository keeps at most one report per day key.
type ReportRepository interface {
	Get(ctx context.Context, date string) (domain.Report, bool, error)
	Insert(ctx context.Context, report domain.Report) error
	Update(ctx context.Context, report domain.Report) error
	Delete(ctx context.Context, date string) error
	List(ctx context.Context) ([]domain.Report, error)
}

type ReportService interface {
	GetReport(ctx context.Context) (domain.Report, error)
	SaveReport(ctx context.Context, summary string) (domain.Report, error)
}
