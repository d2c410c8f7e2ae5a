package ports

import (
	"context"
	"time"

	"github.com/tonandton/report-tracking/internal/core/domain"
)

// TaskRepository stores live (unarchived) tasks. List has no ordering guarantee.
type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	Get(ctx context.Context, id string) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	SetDone(ctx context.Context, id string, done bool, completedAt *time.Time) error
	SetOrder(ctx context.Context, id string, order int) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, id string) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ReorderTasks(ctx context.Context, ids []string) error
}
