package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tonandton/report-tracking/internal/adapter/http/middleware"
	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/pkg/apierrors"
	"github.com/tonandton/report-tracking/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) ReorderTasks(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type reportServiceMock struct {
	mock.Mock
}

func (m *reportServiceMock) GetReport(ctx context.Context) (domain.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Report), args.Error(1)
}

func (m *reportServiceMock) SaveReport(ctx context.Context, summary string) (domain.Report, error) {
	args := m.Called(ctx, summary)
	return args.Get(0).(domain.Report), args.Error(1)
}

type archiveServiceMock struct {
	mock.Mock
}

func (m *archiveServiceMock) ResetDay(ctx context.Context) (domain.ResetResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ResetResult), args.Error(1)
}

func (m *archiveServiceMock) ListHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, limit)

	var entries []domain.HistoryEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.HistoryEntry)
	}
	return entries, args.Error(1)
}

func (m *archiveServiceMock) KPI(ctx context.Context, days int) ([]domain.KPIPoint, error) {
	args := m.Called(ctx, days)

	var points []domain.KPIPoint
	if value := args.Get(0); value != nil {
		points = value.([]domain.KPIPoint)
	}
	return points, args.Error(1)
}

func (m *archiveServiceMock) Export(ctx context.Context) (domain.Export, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Export), args.Error(1)
}

// serve registers a single route behind the language middleware and replays one request.
func serve(method, route, target, body string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.Handle(method, route, middleware.LanguageMiddleware(), handler)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()

	require.Equal(t, code, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, code, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
}
