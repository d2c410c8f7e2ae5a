package ports

import (
	"context"

	"github.com/tonandton/report-tracking/internal/core/domain"
)

// HistoryRepository is append-only. Append fails with domain.ErrHistoryConflict on a duplicate date.
type HistoryRepository interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	Exists(ctx context.Context, date string) (bool, error)
	// List returns entries newest first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}

type ArchiveService interface {
	ResetDay(ctx context.Context) (domain.ResetResult, error)
	ListHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	KPI(ctx context.Context, days int) ([]domain.KPIPoint, error)
	Export(ctx context.Context) (domain.Export, error)
}
