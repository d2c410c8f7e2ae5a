package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonandton/report-tracking/internal/adapter/http/dto"
	"github.com/tonandton/report-tracking/internal/adapter/http/mapper"
	"github.com/tonandton/report-tracking/internal/adapter/http/middleware"
	"github.com/tonandton/report-tracking/internal/adapter/http/validation"
	"github.com/tonandton/report-tracking/internal/core/ports"
	"github.com/tonandton/report-tracking/pkg/apierrors"
)

type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(reportService ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidReportPayload, apierrors.MsgFailGetReport)
		return
	}

	c.JSON(http.StatusOK, mapper.ToReportItem(report))
}

func (h *ReportHandler) SaveReport(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidReportPayload, lang, err)
		return
	}

	summary, err := validation.BuildReportSummary(req)
	if err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidReportPayload, lang, err)
		return
	}

	report, err := h.reportService.SaveReport(c.Request.Context(), summary)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidReportPayload, apierrors.MsgFailSaveReport)
		return
	}

	c.JSON(http.StatusOK, mapper.ToReportItem(report))
}
