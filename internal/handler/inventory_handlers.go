package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marauder-server/internal/models"
)

// ListCatalog godoc
// @Summary List the game item catalog
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.GameItem
// @Router /api/v1/items [get]
func (h *Handler) ListCatalog(c *gin.Context) {
	items, err := h.inventory.ListCatalog(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItem godoc
// @Summary Get a catalog item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} models.GameItem
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *Handler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	item, err := h.inventory.GetItem(c.Request.Context(), itemID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListInventory godoc
// @Summary List the caller's inventory
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.InventoryEntry
// @Router /api/v1/inventory [get]
func (h *Handler) ListInventory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	entries, err := h.inventory.ListInventory(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GrantItem godoc
// @Summary Add items to the caller's inventory
// @Description Quantities merge into an existing stack of the same item.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GrantItemRequest true "Item and quantity"
// @Success 200 {object} models.InventoryEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/inventory/grant [post]
func (h *Handler) GrantItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req GrantItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	entry, err := h.inventory.GrantItem(c.Request.Context(), userID, req.ItemID, req.Quantity)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RemoveItem godoc
// @Summary Remove items from the caller's inventory
// @Description The stack disappears entirely when quantity reaches zero.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RemoveItemRequest true "Item and quantity"
// @Success 200 {object} models.InventoryEntry
// @Success 204 "Stack removed entirely"
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/inventory/remove [post]
func (h *Handler) RemoveItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	entry, err := h.inventory.RemoveItem(c.Request.Context(), userID, req.ItemID, req.Quantity)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if entry == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, entry)
}
