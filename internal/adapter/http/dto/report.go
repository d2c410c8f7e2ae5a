package dto

type ReportItem struct {
	ReportDate string  `json:"report_date"`
	Summary    string  `json:"summary"`
	ReportTime *string `json:"report_time"`
}

type SaveReportRequest struct {
	Summary string `json:"summary" binding:"required"`
}
