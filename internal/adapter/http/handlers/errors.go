package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tonandton/report-tracking/internal/adapter/http/middleware"
	"github.com/tonandton/report-tracking/internal/core/domain"
	"github.com/tonandton/report-tracking/pkg/apierrors"
)

// respondServiceError maps a service error onto a status and message. Storage and unknown
// errors fall back to failKey with a 500.
func respondServiceError(c *gin.Context, err error, invalidKey, failKey string) {
	lang := middleware.GetLang(c)

	switch {
	case errors.Is(err, domain.ErrValidation):
		apierrors.Respond(c, http.StatusBadRequest, invalidKey, lang, err)
	case errors.Is(err, domain.ErrTaskNotFound):
		apierrors.Respond(c, http.StatusNotFound, apierrors.MsgTaskNotFound, lang, err)
	case errors.Is(err, domain.ErrHistoryConflict):
		apierrors.Respond(c, http.StatusConflict, apierrors.MsgDayAlreadyArchived, lang, err)
	default:
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		apierrors.Respond(c, http.StatusInternalServerError, failKey, lang, err)
	}
}
