package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tonandton/report-tracking/internal/core/ports"
)

// Store binds the repositories either to the pool or to one transaction.
type Store struct {
	db      *sqlx.DB
	tasks   *TaskRepository
	reports *ReportRepository
	history *HistoryRepository
}

var _ ports.Store = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:      db,
		tasks:   NewTaskRepository(db),
		reports: NewReportRepository(db),
		history: NewHistoryRepository(db),
	}
}

func (s *Store) Tasks() ports.TaskRepository { return s.tasks }

func (s *Store) Reports() ports.ReportRepository { return s.reports }

func (s *Store) History() ports.HistoryRepository { return s.history }

func (s *Store) InTx(ctx context.Context, fn func(repos ports.Repositories) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError("begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				zap.L().Warn("failed to roll back transaction", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(txRepositories{
		tasks:   NewTaskRepository(tx),
		reports: NewReportRepository(tx),
		history: NewHistoryRepository(tx),
	}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return storageError("commit transaction", err)
	}
	return nil
}

type txRepositories struct {
	tasks   *TaskRepository
	reports *ReportRepository
	history *HistoryRepository
}

func (r txRepositories) Tasks() ports.TaskRepository { return r.tasks }

func (r txRepositories) Reports() ports.ReportRepository { return r.reports }

func (r txRepositories) History() ports.HistoryRepository { return r.history }
