package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marauder-server/internal/models"
)

// GetProfile godoc
// @Summary Get the caller's player profile
// @Description Returns the profile, creating an empty one on first access.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PlayerProfile
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	profile, err := h.profiles.GetOrCreateProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update editable profile fields
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.PlayerProfile
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/profile [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	upd := models.ProfileUpdate{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	}
	if req.House != nil {
		house := models.House(*req.House)
		upd.House = &house
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdatePosition godoc
// @Summary Report the player's current GPS position
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePositionRequest true "Current coordinates"
// @Success 200 {object} models.PlayerProfile
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/profile/position [put]
func (h *Handler) UpdatePosition(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	profile, err := h.profiles.UpdatePosition(c.Request.Context(), userID, *req.Latitude, *req.Longitude)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	positionUpdatesTotal.Inc()
	c.JSON(http.StatusOK, profile)
}

// ListTraces godoc
// @Summary List the caller's recent movement history
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 100)"
// @Success 200 {array} models.GPSTrace
// @Router /api/v1/profile/traces [get]
func (h *Handler) ListTraces(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	traces, err := h.profiles.ListTraces(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, traces)
}

// GetDashboard godoc
// @Summary Get the aggregated home screen data
// @Description Profile, assigned wand and quest counters in one call.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	dashboard, err := h.dashboard.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
