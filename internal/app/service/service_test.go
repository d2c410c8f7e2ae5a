package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	dbadapter "github.com/tonandton/report-tracking/internal/adapter/db"
	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/internal/core/ports"
)

var errInjected = errors.New("injected failure")

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type testEnv struct {
	store   ports.Store
	clock   *fixedClock
	tasks   *TaskService
	reports *ReportService
	archive *ArchiveService
}

func newTestStore(t *testing.T) *dbadapter.Store {
	t.Helper()

	conn, err := sqlx.Connect("sqlite3", filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, dbadapter.Migrate(context.Background(), conn))
	return dbadapter.NewStore(conn)
}

func newTestEnv(t *testing.T, store ports.Store, opts ArchiveOptions) *testEnv {
	t.Helper()

	clock := &fixedClock{now: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)}
	gate := NewDayGate()
	return &testEnv{
		store:   store,
		clock:   clock,
		tasks:   NewTaskService(store, gate, clock, time.UTC),
		reports: NewReportService(store, gate, clock, time.UTC),
		archive: NewArchiveService(store, gate, clock, time.UTC, opts),
	}
}

func (e *testEnv) createTask(t *testing.T, text, priority string) domain.Task {
	t.Helper()

	task, err := e.tasks.CreateTask(context.Background(), domain.CreateTaskInput{Text: text, Priority: priority})
	require.NoError(t, err)
	return task
}

// faultyStore fails selected repository calls made inside transactions.
type faultyStore struct {
	ports.Store
	appendErr     error
	setOrderAt    int
	setOrderCalls int
}

func (s *faultyStore) InTx(ctx context.Context, fn func(repos ports.Repositories) error) error {
	return s.Store.InTx(ctx, func(repos ports.Repositories) error {
		return fn(faultyRepositories{Repositories: repos, store: s})
	})
}

type faultyRepositories struct {
	ports.Repositories
	store *faultyStore
}

func (r faultyRepositories) Tasks() ports.TaskRepository {
	return faultyTasks{TaskRepository: r.Repositories.Tasks(), store: r.store}
}

func (r faultyRepositories) History() ports.HistoryRepository {
	return faultyHistory{HistoryRepository: r.Repositories.History(), err: r.store.appendErr}
}

type faultyTasks struct {
	ports.TaskRepository
	store *faultyStore
}

func (f faultyTasks) SetOrder(ctx context.Context, id string, order int) error {
	f.store.setOrderCalls++
	if f.store.setOrderAt > 0 && f.store.setOrderCalls == f.store.setOrderAt {
		return &domain.StorageError{Op: "update task order", Err: errInjected}
	}
	return f.TaskRepository.SetOrder(ctx, id, order)
}

type faultyHistory struct {
	ports.HistoryRepository
	err error
}

func (f faultyHistory) Append(ctx context.Context, entry domain.HistoryEntry) error {
	if f.err != nil {
		return f.err
	}
	return f.HistoryRepository.Append(ctx, entry)
}
