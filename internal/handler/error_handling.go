package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marauder-server/internal/models"
)

// handleServiceError маппит ошибки сервисного слоя в HTTP-ответ с единым телом.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, models.ErrProfileNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrQuestNotFound),
		errors.Is(err, models.ErrProgressNotFound),
		errors.Is(err, models.ErrLocationNotFound),
		errors.Is(err, models.ErrReportNotFound),
		errors.Is(err, models.ErrWandNotFound):
		status = http.StatusNotFound
		code = models.ErrCodeNotFound

	case errors.Is(err, models.ErrQuestAlreadyTaken),
		errors.Is(err, models.ErrQuestAlreadyCompleted),
		errors.Is(err, models.ErrDuplicateVerification),
		errors.Is(err, models.ErrReportAlreadyResolved):
		status = http.StatusConflict
		code = models.ErrCodeConflict

	case errors.Is(err, models.ErrQuestLevelTooLow):
		status = http.StatusPreconditionFailed
		code = models.ErrCodePreconditionFailed

	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidCoordinates),
		errors.Is(err, models.ErrInvalidHouse),
		errors.Is(err, models.ErrInvalidReportType),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
		code = models.ErrCodeInvalidArgument

	case errors.Is(err, models.ErrTokenInvalid),
		errors.Is(err, models.ErrTokenMalformed),
		errors.Is(err, models.ErrTokenExpired):
		status = http.StatusUnauthorized
		code = models.ErrCodeUnauthorized

	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
		code = models.ErrCodeForbidden

	default:
		h.logger.Error("Unhandled service error", zap.Error(err), zap.String("path", c.FullPath()))
		status = http.StatusInternalServerError
		code = models.ErrCodeInternal
		c.JSON(status, models.ErrorResponse{Code: code, Message: models.ErrInternalServer.Error()})
		return
	}

	c.JSON(status, models.ErrorResponse{Code: code, Message: err.Error()})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Code:    models.ErrCodeInvalidArgument,
		Message: err.Error(),
	})
}
