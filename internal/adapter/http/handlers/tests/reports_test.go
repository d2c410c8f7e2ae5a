package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tonandton/report-tracking/internal/adapter/http/dto"
	"github.com/tonandton/report-tracking/internal/adapter/http/handlers"
	"github.com/tonandton/report-tracking/internal/core/domain"
)

func TestReportHandler_GetReport_Empty(t *testing.T) {
	serviceMock := new(reportServiceMock)
	serviceMock.On("GetReport", mock.Anything).Return(domain.Report{Date: "2026-10-18"}, nil).Once()
	handler := handlers.NewReportHandler(serviceMock)

	rec := serve(http.MethodGet, "/api/report", "/api/report", "", handler.GetReport)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ReportItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2026-10-18", got.ReportDate)
	require.Empty(t, got.Summary)
	require.Nil(t, got.ReportTime)
	serviceMock.AssertExpectations(t)
}

func TestReportHandler_GetReport_Error(t *testing.T) {
	serviceMock := new(reportServiceMock)
	serviceMock.On("GetReport", mock.Anything).Return(domain.Report{}, errors.New("db is down")).Once()
	handler := handlers.NewReportHandler(serviceMock)

	rec := serve(http.MethodGet, "/api/report", "/api/report", "", handler.GetReport)

	requireAPIError(t, rec, http.StatusInternalServerError, "Could not load today's report")
	serviceMock.AssertExpectations(t)
}

func TestReportHandler_SaveReport_Success(t *testing.T) {
	savedAt := time.Date(2026, 10, 18, 18, 0, 0, 0, time.UTC)

	serviceMock := new(reportServiceMock)
	serviceMock.On("SaveReport", mock.Anything, "did work").
		Return(domain.Report{Date: "2026-10-18", Summary: "did work", ReportTime: &savedAt}, nil).Once()
	handler := handlers.NewReportHandler(serviceMock)

	rec := serve(http.MethodPost, "/api/report", "/api/report", `{"summary":" did work "}`, handler.SaveReport)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ReportItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "did work", got.Summary)
	require.Equal(t, "2026-10-18T18:00:00Z", *got.ReportTime)
	serviceMock.AssertExpectations(t)
}

func TestReportHandler_SaveReport_InvalidPayload(t *testing.T) {
	for _, body := range []string{`{}`, `{"summary":""}`, `{"summary":"   "}`, `not json`} {
		serviceMock := new(reportServiceMock)
		handler := handlers.NewReportHandler(serviceMock)

		rec := serve(http.MethodPost, "/api/report", "/api/report", body, handler.SaveReport)

		requireAPIError(t, rec, http.StatusBadRequest, "Invalid report payload")
		serviceMock.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
	}
}

func TestReportHandler_SaveReport_StorageError(t *testing.T) {
	serviceMock := new(reportServiceMock)
	serviceMock.On("SaveReport", mock.Anything, "did work").
		Return(domain.Report{}, &domain.StorageError{Op: "insert report", Err: errors.New("read-only")}).Once()
	handler := handlers.NewReportHandler(serviceMock)

	rec := serve(http.MethodPost, "/api/report", "/api/report", `{"summary":"did work"}`, handler.SaveReport)

	requireAPIError(t, rec, http.StatusInternalServerError, "Could not save the report")
	serviceMock.AssertExpectations(t)
}
