package dto

type HistoryItem struct {
	Date       string     `json:"date"`
	Tasks      []TaskItem `json:"tasks"`
	Report     string     `json:"report"`
	ReportDate *string    `json:"reportDate,omitempty"`
	ArchivedAt string     `json:"archived_at"`
	Completed  int        `json:"completed"`
	Total      int        `json:"total"`
}

type KPIItem struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Percent   int    `json:"percent"`
}

type ResetDayResponse struct {
	Archived bool         `json:"archived"`
	Entry    *HistoryItem `json:"entry,omitempty"`
}

type ExportDocument struct {
	ExportedAt string        `json:"exported_at"`
	Tasks      []TaskItem    `json:"tasks"`
	Reports    []ReportItem  `json:"reports"`
	History    []HistoryItem `json:"history"`
}
