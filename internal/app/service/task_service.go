package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/internal/core/ordering"
	"github.com/tonandton/report-tracking/internal/core/ports"
)

const maxTaskTextLength = 1000

type TaskService struct {
	store    ports.Store
	gate     *DayGate
	clock    ports.Clock
	location *time.Location
}

func NewTaskService(store ports.Store, gate *DayGate, clock ports.Clock, location *time.Location) *TaskService {
	return &TaskService{store: store, gate: gate, clock: clock, location: location}
}

// ListTasks returns the live tasks in display order.
func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.store.Tasks().List(ctx)
	if err != nil {
		return nil, err
	}
	return ordering.Sort(tasks), nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return domain.Task{}, &domain.ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if len([]rune(text)) > maxTaskTextLength {
		return domain.Task{}, &domain.ValidationError{Field: "text", Reason: "too long"}
	}

	due, err := domain.ParseDue(input.Due, s.location)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        uuid.NewString(),
		Text:      text,
		Priority:  domain.ParsePriority(input.Priority),
		Due:       due,
		CreatedAt: s.clock.Now(),
	}

	defer s.gate.shared()()
	if err := s.store.Tasks().Create(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// ToggleTask flips done and keeps completed_at in step with it.
func (s *TaskService) ToggleTask(ctx context.Context, id string) (domain.Task, error) {
	defer s.gate.shared()()

	var toggled domain.Task
	err := s.store.InTx(ctx, func(repos ports.Repositories) error {
		task, err := repos.Tasks().Get(ctx, id)
		if err != nil {
			return err
		}

		task.Done = !task.Done
		task.CompletedAt = nil
		if task.Done {
			now := s.clock.Now()
			task.CompletedAt = &now
		}

		if err := repos.Tasks().SetDone(ctx, id, task.Done, task.CompletedAt); err != nil {
			return err
		}
		toggled = task
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return toggled, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	defer s.gate.shared()()
	return s.store.Tasks().Delete(ctx, id)
}

// ReorderTasks writes order = position for every listed id in one transaction. Unknown,
// blank or repeated ids reject the whole call before anything is written.
func (s *TaskService) ReorderTasks(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return &domain.ValidationError{Field: "order", Reason: "must list at least one task"}
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return &domain.ValidationError{Field: "order", Reason: "contains a blank id"}
		}
		if _, dup := seen[id]; dup {
			return &domain.ValidationError{Field: "order", Reason: "contains duplicate id " + id}
		}
		seen[id] = struct{}{}
	}

	defer s.gate.shared()()

	return s.store.InTx(ctx, func(repos ports.Repositories) error {
		tasks, err := repos.Tasks().List(ctx)
		if err != nil {
			return err
		}
		known := make(map[string]struct{}, len(tasks))
		for _, task := range tasks {
			known[task.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := known[id]; !ok {
				return &domain.ValidationError{Field: "order", Reason: "unknown task id " + id}
			}
		}

		for position, id := range ids {
			if err := repos.Tasks().SetOrder(ctx, id, position); err != nil {
				return err
			}
		}
		return nil
	})
}

var _ ports.TaskService = (*TaskService)(nil)
