package domain

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority falls back to medium for empty or unknown values.
func ParsePriority(value string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(value))) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Rank orders priorities for display: high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

type Task struct {
	ID          string
	Text        string
	Priority    Priority
	Due         *time.Time
	Done        bool
	Order       *int
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Duration reports how long a finished task took from creation to completion.
func (t Task) Duration() (time.Duration, bool) {
	if !t.Done || t.CompletedAt == nil {
		return 0, false
	}
	d := t.CompletedAt.Sub(t.CreatedAt)
	if d < 0 {
		return 0, true
	}
	return d, true
}

// CreateTaskInput carries the raw boundary values; the task service parses and validates them.
type CreateTaskInput struct {
	Text     string
	Due      string
	Priority string
}

var dueLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDue accepts RFC3339 timestamps, or zone-less local timestamps and dates interpreted in loc.
func ParseDue(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dueLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return &parsed, nil
		}
	}
	return nil, &ValidationError{Field: "due", Reason: "not a valid timestamp"}
}
