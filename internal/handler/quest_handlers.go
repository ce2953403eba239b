package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marauder-server/internal/models"
)

// ListAvailableQuests godoc
// @Summary List quests the caller can take right now
// @Description Level-gated and geofenced to the caller's last known position.
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Quest
// @Router /api/v1/quests/available [get]
func (h *Handler) ListAvailableQuests(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	quests, err := h.quests.ListAvailable(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quests)
}

// ListActiveQuests godoc
// @Summary List the caller's accepted and in-progress quests
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.QuestProgress
// @Router /api/v1/quests/active [get]
func (h *Handler) ListActiveQuests(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	list, err := h.quests.ListActive(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListCompletedQuests godoc
// @Summary List the caller's completed quests
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.QuestProgress
// @Router /api/v1/quests/completed [get]
func (h *Handler) ListCompletedQuests(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	list, err := h.quests.ListCompleted(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AcceptQuest godoc
// @Summary Accept a quest
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quest ID"
// @Success 201 {object} models.QuestProgress
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 412 {object} models.ErrorResponse
// @Router /api/v1/quests/{id}/accept [post]
func (h *Handler) AcceptQuest(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	questID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	progress, err := h.quests.Accept(c.Request.Context(), userID, questID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	questsAcceptedTotal.Inc()
	c.JSON(http.StatusCreated, progress)
}

// AdvanceQuest godoc
// @Summary Move a quest progress record to IN_PROGRESS or FAILED
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Progress ID"
// @Param request body AdvanceQuestRequest true "Target status"
// @Success 200 {object} models.QuestProgress
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/quests/progress/{id}/advance [post]
func (h *Handler) AdvanceQuest(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	progressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var req AdvanceQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	progress, err := h.quests.Advance(c.Request.Context(), userID, progressID, req.Status)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// CompleteQuest godoc
// @Summary Complete a quest and credit its rewards
// @Description Experience, optional item and the COMPLETED stamp apply atomically.
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Progress ID"
// @Success 200 {object} models.CompletionReward
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/quests/progress/{id}/complete [post]
func (h *Handler) CompleteQuest(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	progressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	reward, err := h.quests.Complete(c.Request.Context(), userID, progressID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	questsCompletedTotal.Inc()
	c.JSON(http.StatusOK, reward)
}
