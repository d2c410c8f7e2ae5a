package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/internal/core/ports"
)

const (
	taskColumns = `id, text, priority, due, done, sort_order, created_at, completed_at`

	insertTaskQuery = `
INSERT INTO tasks (id, text, priority, due, done, sort_order, created_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	getTaskQuery       = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	listTasksQuery     = `SELECT ` + taskColumns + ` FROM tasks`
	setTaskDoneQuery   = `UPDATE tasks SET done = ?, completed_at = ? WHERE id = ?`
	setTaskOrderQuery  = `UPDATE tasks SET sort_order = ? WHERE id = ?`
	deleteTaskQuery    = `DELETE FROM tasks WHERE id = ?`
	deleteAllTaskQuery = `DELETE FROM tasks`
	countTaskQuery     = `SELECT COUNT(*) FROM tasks WHERE id = ?`
)

// TaskRepository works against either the pool or a transaction.
type TaskRepository struct {
	db sqlx.ExtContext
}

type taskRow struct {
	ID          string        `db:"id"`
	Text        string        `db:"text"`
	Priority    string        `db:"priority"`
	Due         sql.NullTime  `db:"due"`
	Done        bool          `db:"done"`
	SortOrder   sql.NullInt64 `db:"sort_order"`
	CreatedAt   time.Time     `db:"created_at"`
	CompletedAt sql.NullTime  `db:"completed_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db sqlx.ExtContext) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	row := mapDomainTaskToTaskRow(task)
	_, err := r.db.ExecContext(ctx, r.db.Rebind(insertTaskQuery),
		row.ID,
		row.Text,
		row.Priority,
		row.Due,
		row.Done,
		row.SortOrder,
		row.CreatedAt,
		row.CompletedAt,
	)
	if err != nil {
		return storageError("insert task", err)
	}
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, r.db, &row, r.db.Rebind(getTaskQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.NewTaskNotFoundError(id)
		}
		return domain.Task{}, storageError("get task", err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, listTasksQuery); err != nil {
		return nil, storageError("list tasks", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) SetDone(ctx context.Context, id string, done bool, completedAt *time.Time) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(setTaskDoneQuery), done, nullTime(completedAt), id)
	if err != nil {
		return storageError("update task done", err)
	}
	return r.expectAffected(ctx, result, id)
}

func (r *TaskRepository) SetOrder(ctx context.Context, id string, order int) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(setTaskOrderQuery), order, id)
	if err != nil {
		return storageError("update task order", err)
	}
	return r.expectAffected(ctx, result, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(deleteTaskQuery), id)
	if err != nil {
		return storageError("delete task", err)
	}
	return r.expectAffected(ctx, result, id)
}

func (r *TaskRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, deleteAllTaskQuery)
	if err != nil {
		return 0, storageError("delete tasks", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, storageError("delete tasks", err)
	}
	return affected, nil
}

// expectAffected reports a missing task. MySQL counts changed rows only, so an update that
// writes identical values is confirmed with a lookup instead.
func (r *TaskRepository) expectAffected(ctx context.Context, result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return storageError("rows affected", err)
	}
	if affected > 0 {
		return nil
	}

	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, r.db.Rebind(countTaskQuery), id); err != nil {
		return storageError("count task", err)
	}
	if count == 0 {
		return domain.NewTaskNotFoundError(id)
	}
	return nil
}

func mapDomainTaskToTaskRow(task domain.Task) taskRow {
	row := taskRow{
		ID:          task.ID,
		Text:        task.Text,
		Priority:    string(task.Priority),
		Due:         nullTime(task.Due),
		Done:        task.Done,
		CreatedAt:   task.CreatedAt.UTC(),
		CompletedAt: nullTime(task.CompletedAt),
	}
	if task.Order != nil {
		row.SortOrder = sql.NullInt64{Int64: int64(*task.Order), Valid: true}
	}
	return row
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Text:      row.Text,
		Priority:  domain.ParsePriority(row.Priority),
		Done:      row.Done,
		CreatedAt: row.CreatedAt,
	}

	if row.Due.Valid {
		value := row.Due.Time
		task.Due = &value
	}

	if row.SortOrder.Valid {
		value := int(row.SortOrder.Int64)
		task.Order = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	return task
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: value.UTC(), Valid: true}
}
