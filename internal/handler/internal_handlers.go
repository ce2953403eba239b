package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marauder-server/internal/models"
)

// InternalListReports godoc
// @Summary List reports by status for moderation
// @Tags internal
// @Produce json
// @Param status query string true "Report status"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.MapReport
// @Failure 403 {object} models.ErrorResponse
// @Router /internal/reports [get]
func (h *Handler) InternalListReports(c *gin.Context) {
	status := models.ReportStatus(c.DefaultQuery("status", string(models.ReportStatusSubmitted)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reports, err := h.reports.ListByStatus(c.Request.Context(), status, limit, offset)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// InternalSetConfidence godoc
// @Summary Apply an externally computed confidence score to a report
// @Tags internal
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body SetConfidenceRequest true "Confidence score"
// @Success 204 "Score applied"
// @Failure 404 {object} models.ErrorResponse
// @Router /internal/reports/{id}/confidence [put]
func (h *Handler) InternalSetConfidence(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req SetConfidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.reports.SetConfidenceScore(c.Request.Context(), reportID, req.ConfidenceScore); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// InternalResolveReport godoc
// @Summary Stamp the moderation decision on a report
// @Description A VERIFIED NEW_POI_SUGGESTION materializes a new magical location.
// @Tags internal
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body ResolveReportRequest true "Decision"
// @Success 200 {object} models.MapReport
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /internal/reports/{id}/resolve [post]
func (h *Handler) InternalResolveReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	report, err := h.reports.Resolve(c.Request.Context(), reportID, req.ResolverID, req.Status, req.AdminNotes)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// InternalDeactivateLocation godoc
// @Summary Deactivate a magical location
// @Description The location disappears from queries and quest targeting; history stays.
// @Tags internal
// @Produce json
// @Param id path string true "Location ID"
// @Success 204 "Location deactivated"
// @Failure 404 {object} models.ErrorResponse
// @Router /internal/locations/{id} [delete]
func (h *Handler) InternalDeactivateLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.locations.Deactivate(c.Request.Context(), locationID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
