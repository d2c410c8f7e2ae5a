package mapper

import (
	"time"

	"github.com/tonandton/report-tracking/internal/adapter/http/dto"
	"github.com/tonandton/report-tracking/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Text:      task.Text,
		Priority:  string(task.Priority),
		Done:      task.Done,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}

	if task.Due != nil {
		value := task.Due.Format(time.RFC3339)
		item.Due = &value
	}

	if task.Order != nil {
		value := *task.Order
		item.Order = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if duration, ok := task.Duration(); ok {
		minutes := int64(duration / time.Minute)
		item.DurationMinutes = &minutes
	}

	return item
}
