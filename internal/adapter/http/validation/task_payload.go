package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/tonandton/report-tracking/internal/adapter/http/dto"
	"github.com/tonandton/report-tracking/internal/core/domain"
)

var (
	ErrInvalidTaskPayload   = errors.New("invalid task payload")
	ErrInvalidOrder         = errors.New("invalid order")
	ErrInvalidReportPayload = errors.New("invalid report payload")
	ErrInvalidLimit         = errors.New("invalid limit")
)

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if !hasJSONField(raw, "text") || isJSONNull(raw["text"]) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{Text: text}
	if req.Due != nil {
		input.Due = strings.TrimSpace(*req.Due)
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}

	return input, nil
}

// BuildReorderIDs requires "order" to be a non-empty JSON array of ids.
func BuildReorderIDs(req dto.ReorderTasksRequest, raw map[string]json.RawMessage) ([]string, error) {
	value, ok := raw["order"]
	if !ok || !isJSONArray(value) {
		return nil, ErrInvalidOrder
	}
	if len(req.Order) == 0 {
		return nil, ErrInvalidOrder
	}

	ids := make([]string, 0, len(req.Order))
	for _, id := range req.Order {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, ErrInvalidOrder
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func BuildReportSummary(req dto.SaveReportRequest) (string, error) {
	summary := strings.TrimSpace(req.Summary)
	if summary == "" {
		return "", ErrInvalidReportPayload
	}
	return summary, nil
}

// ParseLimit reads an optional positive integer query value; empty means "use the default".
func ParseLimit(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func isJSONArray(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '['
}
