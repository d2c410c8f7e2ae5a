package dto

type TaskItem struct {
	ID              string  `json:"id"`
	Text            string  `json:"text"`
	Priority        string  `json:"priority"`
	Due             *string `json:"due,omitempty"`
	Done            bool    `json:"done"`
	Order           *int    `json:"order,omitempty"`
	CreatedAt       string  `json:"created_at"`
	CompletedAt     *string `json:"completed_at,omitempty"`
	DurationMinutes *int64  `json:"duration_minutes,omitempty"`
}

type CreateTaskRequest struct {
	Text     string  `json:"text" binding:"required,max=1000"`
	Due      *string `json:"due"`
	Priority *string `json:"priority"`
}

type ReorderTasksRequest struct {
	Order []string `json:"order" binding:"required"`
}

type ReorderTasksResponse struct {
	Success bool `json:"success"`
}

type DeleteTaskResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
