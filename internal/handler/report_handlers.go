package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marauder-server/internal/models"
)

// SubmitReport godoc
// @Summary Submit a crowd-sourced map report
// @Description Reporter, timestamp and initial SUBMITTED status are server-assigned.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitReportRequest true "Report payload"
// @Success 201 {object} models.MapReport
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /api/v1/reports [post]
func (h *Handler) SubmitReport(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	report, err := h.reports.Submit(c.Request.Context(), userID, models.ReportSubmission{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ReportType:   models.ReportType(req.ReportType),
		Description:  req.Description,
		PhotoURL:     req.PhotoURL,
		RelatedPOIID: req.RelatedPOIID,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	reportsSubmittedTotal.WithLabelValues(string(report.ReportType)).Inc()
	c.JSON(http.StatusCreated, report)
}

// ListMyReports godoc
// @Summary List the caller's submitted reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MapReport
// @Router /api/v1/reports/mine [get]
func (h *Handler) ListMyReports(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	reports, err := h.reports.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport godoc
// @Summary Get a map report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} models.MapReport
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/reports/{id} [get]
func (h *Handler) GetReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	report, err := h.reports.GetReport(c.Request.Context(), reportID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetReportTally godoc
// @Summary Get agreement/disagreement counts for a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} models.VerificationTally
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/reports/{id}/tally [get]
func (h *Handler) GetReportTally(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	tally, err := h.reports.Tally(c.Request.Context(), reportID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tally)
}

// VerifyReport godoc
// @Summary Attest to an existing report
// @Description One verification per verifier per report; the report status is unchanged.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body VerifyReportRequest true "Attestation"
// @Success 201 {object} models.ReportVerification
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/reports/{id}/verify [post]
func (h *Handler) VerifyReport(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req VerifyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	verification, err := h.reports.Verify(c.Request.Context(), userID, reportID, *req.Agrees, req.Comment)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	reportVerificationsTotal.Inc()
	c.JSON(http.StatusCreated, verification)
}
