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
	getReportQuery    = `SELECT report_date, summary, report_time FROM daily_reports WHERE report_date = ?`
	listReportsQuery  = `SELECT report_date, summary, report_time FROM daily_reports ORDER BY report_date`
	insertReportQuery = `INSERT INTO daily_reports (report_date, summary, report_time) VALUES (?, ?, ?)`
	updateReportQuery = `UPDATE daily_reports SET summary = ?, report_time = ? WHERE report_date = ?`
	deleteReportQuery = `DELETE FROM daily_reports WHERE report_date = ?`
)

type ReportRepository struct {
	db sqlx.ExtContext
}

type reportRow struct {
	ReportDate string    `db:"report_date"`
	Summary    string    `db:"summary"`
	ReportTime time.Time `db:"report_time"`
}

var _ ports.ReportRepository = (*ReportRepository)(nil)

func NewReportRepository(db sqlx.ExtContext) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Get(ctx context.Context, date string) (domain.Report, bool, error) {
	var row reportRow
	if err := sqlx.GetContext(ctx, r.db, &row, r.db.Rebind(getReportQuery), date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Report{Date: date}, false, nil
		}
		return domain.Report{}, false, storageError("get report", err)
	}
	return mapReportRowToDomainReport(row), true, nil
}

func (r *ReportRepository) Insert(ctx context.Context, report domain.Report) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(insertReportQuery), report.Date, report.Summary, reportTime(report))
	if err != nil {
		return storageError("insert report", err)
	}
	return nil
}

func (r *ReportRepository) Update(ctx context.Context, report domain.Report) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(updateReportQuery), report.Summary, reportTime(report), report.Date)
	if err != nil {
		return storageError("update report", err)
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(deleteReportQuery), date); err != nil {
		return storageError("delete report", err)
	}
	return nil
}

func (r *ReportRepository) List(ctx context.Context) ([]domain.Report, error) {
	var rows []reportRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, listReportsQuery); err != nil {
		return nil, storageError("list reports", err)
	}

	reports := make([]domain.Report, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, mapReportRowToDomainReport(row))
	}
	return reports, nil
}

func reportTime(report domain.Report) time.Time {
	if report.ReportTime == nil {
		return time.Now().UTC()
	}
	return report.ReportTime.UTC()
}

func mapReportRowToDomainReport(row reportRow) domain.Report {
	reportTime := row.ReportTime
	return domain.Report{
		Date:       row.ReportDate,
		Summary:    row.Summary,
		ReportTime: &reportTime,
	}
}
