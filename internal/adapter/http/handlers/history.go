package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonandton/report-tracking/internal/adapter/http/mapper"
	"github.com/tonandton/report-tracking/internal/adapter/http/middleware"
	"github.com/tonandton/report-tracking/internal/adapter/http/validation"
	"github.com/tonandton/report-tracking/internal/core/ports"
	"github.com/tonandton/report-tracking/pkg/apierrors"
)

const exportFileName = "daily-flow-export.json"

type HistoryHandler struct {
	archiveService ports.ArchiveService
}

func NewHistoryHandler(archiveService ports.ArchiveService) *HistoryHandler {
	return &HistoryHandler{archiveService: archiveService}
}

func (h *HistoryHandler) ListHistory(c *gin.Context) {
	limit, err := validation.ParseLimit(c.Query("limit"))
	if err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidLimit, middleware.GetLang(c), err)
		return
	}

	entries, err := h.archiveService.ListHistory(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidLimit, apierrors.MsgFailListHistory)
		return
	}

	c.JSON(http.StatusOK, mapper.ToHistoryItems(entries))
}

func (h *HistoryHandler) KPI(c *gin.Context) {
	days, err := validation.ParseLimit(c.Query("days"))
	if err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidLimit, middleware.GetLang(c), err)
		return
	}

	points, err := h.archiveService.KPI(c.Request.Context(), days)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidLimit, apierrors.MsgFailKPI)
		return
	}

	c.JSON(http.StatusOK, mapper.ToKPIItems(points))
}

func (h *HistoryHandler) ResetDay(c *gin.Context) {
	result, err := h.archiveService.ResetDay(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailResetDay, apierrors.MsgFailResetDay)
		return
	}

	c.JSON(http.StatusOK, mapper.ToResetDayResponse(result))
}

func (h *HistoryHandler) Export(c *gin.Context) {
	export, err := h.archiveService.Export(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailExport, apierrors.MsgFailExport)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFileName)
	c.IndentedJSON(http.StatusOK, mapper.ToExportDocument(export))
}
