package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/internal/core/ports"
)

const (
	insertHistoryQuery = `INSERT INTO history (entry_date, data, archived_at) VALUES (?, ?, ?)`
	countHistoryQuery  = `SELECT COUNT(*) FROM history WHERE entry_date = ?`
	listHistoryQuery   = `SELECT entry_date, data, archived_at FROM history ORDER BY entry_date DESC`
)

type HistoryRepository struct {
	db sqlx.ExtContext
}

type historyRow struct {
	EntryDate  string    `db:"entry_date"`
	Data       string    `db:"data"`
	ArchivedAt time.Time `db:"archived_at"`
}

// historyDocument is the JSON shape stored in history.data.
type historyDocument struct {
	Tasks      []historyTask `json:"tasks"`
	Report     string        `json:"report"`
	ReportDate *time.Time    `json:"reportDate,omitempty"`
}

type historyTask struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Priority    string     `json:"priority"`
	Due         *time.Time `json:"due,omitempty"`
	Done        bool       `json:"done"`
	Order       *int       `json:"order,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(db sqlx.ExtContext) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry domain.HistoryEntry) error {
	data, err := json.Marshal(toHistoryDocument(entry))
	if err != nil {
		return storageError("encode history entry", err)
	}

	_, err = r.db.ExecContext(ctx, r.db.Rebind(insertHistoryQuery), entry.Date, string(data), entry.ArchivedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewHistoryConflictError(entry.Date)
		}
		return storageError("insert history entry", err)
	}
	return nil
}

func (r *HistoryRepository) Exists(ctx context.Context, date string) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, r.db.Rebind(countHistoryQuery), date); err != nil {
		return false, storageError("check history entry", err)
	}
	return count > 0, nil
}

func (r *HistoryRepository) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	query := listHistoryQuery
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []historyRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, storageError("list history", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := mapHistoryRowToDomainEntry(row)
		if err != nil {
			return nil, storageError("decode history entry", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toHistoryDocument(entry domain.HistoryEntry) historyDocument {
	doc := historyDocument{
		Tasks:      make([]historyTask, 0, len(entry.Tasks)),
		Report:     entry.Report,
		ReportDate: entry.ReportDate,
	}
	for _, task := range entry.Tasks {
		doc.Tasks = append(doc.Tasks, historyTask{
			ID:          task.ID,
			Text:        task.Text,
			Priority:    string(task.Priority),
			Due:         task.Due,
			Done:        task.Done,
			Order:       task.Order,
			CreatedAt:   task.CreatedAt,
			CompletedAt: task.CompletedAt,
		})
	}
	return doc
}

func mapHistoryRowToDomainEntry(row historyRow) (domain.HistoryEntry, error) {
	var doc historyDocument
	if err := json.Unmarshal([]byte(row.Data), &doc); err != nil {
		return domain.HistoryEntry{}, err
	}

	entry := domain.HistoryEntry{
		Date:       row.EntryDate,
		Tasks:      make([]domain.Task, 0, len(doc.Tasks)),
		Report:     doc.Report,
		ReportDate: doc.ReportDate,
		ArchivedAt: row.ArchivedAt,
	}
	for _, task := range doc.Tasks {
		entry.Tasks = append(entry.Tasks, domain.Task{
			ID:          task.ID,
			Text:        task.Text,
			Priority:    domain.ParsePriority(task.Priority),
			Due:         task.Due,
			Done:        task.Done,
			Order:       task.Order,
			CreatedAt:   task.CreatedAt,
			CompletedAt: task.CompletedAt,
		})
	}
	return entry, nil
}
