package ports

import (
	"context"
	"time"
)

type Repositories interface {
	Tasks() TaskRepository
	Reports() ReportRepository
	History() HistoryRepository
}

// Store exposes repositories bound to the connection pool, and InTx runs fn against
// repositories bound to a single transaction that commits only if fn returns nil.
type Store interface {
	Repositories
	InTx(ctx context.Context, fn func(repos Repositories) error) error
}

type Clock interface {
	Now() time.Time
}
