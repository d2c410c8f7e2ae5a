package mapper

import (
	"time"

	"github.com/tonandton/report-tracking/internal/adapter/http/dto"
	"github.com/tonandton/report-tracking/internal/core/domain"
)

func ToReportItem(report domain.Report) dto.ReportItem {
	item := dto.ReportItem{
		ReportDate: report.Date,
		Summary:    report.Summary,
	}
	if report.ReportTime != nil {
		value := report.ReportTime.Format(time.RFC3339)
		item.ReportTime = &value
	}
	return item
}

func ToReportItems(reports []domain.Report) []dto.ReportItem {
	items := make([]dto.ReportItem, 0, len(reports))
	for _, report := range reports {
		items = append(items, ToReportItem(report))
	}
	return items
}

func ToHistoryItem(entry domain.HistoryEntry) dto.HistoryItem {
	item := dto.HistoryItem{
		Date:       entry.Date,
		Tasks:      ToTaskItems(entry.Tasks),
		Report:     entry.Report,
		ArchivedAt: entry.ArchivedAt.Format(time.RFC3339),
		Completed:  entry.CompletedCount(),
		Total:      len(entry.Tasks),
	}
	if entry.ReportDate != nil {
		value := entry.ReportDate.Format(time.RFC3339)
		item.ReportDate = &value
	}
	return item
}

func ToHistoryItems(entries []domain.HistoryEntry) []dto.HistoryItem {
	items := make([]dto.HistoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToHistoryItem(entry))
	}
	return items
}

func ToKPIItems(points []domain.KPIPoint) []dto.KPIItem {
	items := make([]dto.KPIItem, 0, len(points))
	for _, point := range points {
		items = append(items, dto.KPIItem{
			Date:      point.Date,
			Total:     point.Total,
			Completed: point.Completed,
			Percent:   point.Percent,
		})
	}
	return items
}

func ToResetDayResponse(result domain.ResetResult) dto.ResetDayResponse {
	response := dto.ResetDayResponse{Archived: result.Archived}
	if result.Entry != nil {
		entry := ToHistoryItem(*result.Entry)
		response.Entry = &entry
	}
	return response
}

func ToExportDocument(export domain.Export) dto.ExportDocument {
	return dto.ExportDocument{
		ExportedAt: export.ExportedAt.Format(time.RFC3339),
		Tasks:      ToTaskItems(export.Tasks),
		Reports:    ToReportItems(export.Reports),
		History:    ToHistoryItems(export.History),
	}
}
