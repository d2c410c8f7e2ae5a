package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tonandton/report-tracking/internal/adapter/http/handlers"
	"github.com/tonandton/report-tracking/internal/adapter/http/middleware"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Tasks   *handlers.TaskHandler
	Reports *handlers.ReportHandler
	History *handlers.HistoryHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.POST("/tasks/reorder", h.Tasks.ReorderTasks)
		api.PUT("/tasks/:id/toggle", h.Tasks.ToggleTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		api.GET("/report", h.Reports.GetReport)
		api.POST("/report", h.Reports.SaveReport)

		api.GET("/history", h.History.ListHistory)
		api.GET("/history/kpi", h.History.KPI)
		api.POST("/reset-day", h.History.ResetDay)
		api.GET("/export-json", h.History.Export)
	}
}
