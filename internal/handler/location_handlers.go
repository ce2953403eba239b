package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListNearbyLocations godoc
// @Summary List active magical locations near a point
// @Description Bounding-box filter of ±0.1 degrees around the given coordinates.
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {array} models.MagicalLocation
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/locations/nearby [get]
func (h *Handler) ListNearbyLocations(c *gin.Context) {
	var q NearbyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err)
		return
	}

	locations, err := h.locations.ListNearby(c.Request.Context(), *q.Latitude, *q.Longitude)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// GetLocation godoc
// @Summary Get a magical location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} models.MagicalLocation
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *Handler) GetLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	location, err := h.locations.Get(c.Request.Context(), locationID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}
