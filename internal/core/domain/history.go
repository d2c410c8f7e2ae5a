package domain

import (
	"math"
	"time"
)

type HistoryEntry struct {
	Date       string
	Tasks      []Task
	Report     string
	ReportDate *time.Time
	ArchivedAt time.Time
}

func (e HistoryEntry) CompletedCount() int {
	completed := 0
	for _, task := range e.Tasks {
		if task.Done {
			completed++
		}
	}
	return completed
}

type ResetResult struct {
	Archived bool
	Entry    *HistoryEntry
}

type KPIPoint struct {
	Date      string
	Total     int
	Completed int
	Percent   int
}

// CompletionPoint computes the completion percentage of an archived day.
func CompletionPoint(entry HistoryEntry) KPIPoint {
	point := KPIPoint{
		Date:      entry.Date,
		Total:     len(entry.Tasks),
		Completed: entry.CompletedCount(),
	}
	if point.Total > 0 {
		point.Percent = int(math.Round(float64(point.Completed) / float64(point.Total) * 100))
	}
	return point
}

type Export struct {
	Tasks      []Task
	Reports    []Report
	History    []HistoryEntry
	ExportedAt time.Time
}
