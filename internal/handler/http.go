package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marauder-server/internal/service"
)

// Handler bundles the HTTP endpoints of the game server.
type Handler struct {
	profiles  service.ProfileService
	inventory service.InventoryService
	quests    service.QuestService
	reports   service.ReportService
	locations service.LocationService
	dashboard service.DashboardService
	logger    *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(
	profiles service.ProfileService,
	inventory service.InventoryService,
	quests service.QuestService,
	reports service.ReportService,
	locations service.LocationService,
	dashboard service.DashboardService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		profiles:  profiles,
		inventory: inventory,
		quests:    quests,
		reports:   reports,
		locations: locations,
		dashboard: dashboard,
		logger:    logger.Named("Handler"),
	}
}

// RegisterRoutes mounts all API routes.
//   - /api/v1/...      игровые эндпоинты, JWT игрока
//   - /internal/...    межсервисные эндпоинты, статический токен
func (h *Handler) RegisterRoutes(
	router *gin.Engine,
	authMW gin.HandlerFunc,
	internalMW gin.HandlerFunc,
	reportRateLimitMW gin.HandlerFunc,
) {
	api := router.Group("/api/v1")
	api.Use(authMW)
	{
		api.GET("/dashboard", h.GetDashboard)

		profile := api.Group("/profile")
		{
			profile.GET("", h.GetProfile)
			profile.PATCH("", h.UpdateProfile)
			profile.PUT("/position", h.UpdatePosition)
			profile.GET("/traces", h.ListTraces)
		}

		items := api.Group("/items")
		{
			items.GET("", h.ListCatalog)
			items.GET("/:id", h.GetItem)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", h.ListInventory)
			inventory.POST("/grant", h.GrantItem)
			inventory.POST("/remove", h.RemoveItem)
		}

		quests := api.Group("/quests")
		{
			quests.GET("/available", h.ListAvailableQuests)
			quests.GET("/active", h.ListActiveQuests)
			quests.GET("/completed", h.ListCompletedQuests)
			quests.POST("/:id/accept", h.AcceptQuest)
			quests.POST("/progress/:id/advance", h.AdvanceQuest)
			quests.POST("/progress/:id/complete", h.CompleteQuest)
		}

		locations := api.Group("/locations")
		{
			locations.GET("/nearby", h.ListNearbyLocations)
			locations.GET("/:id", h.GetLocation)
		}

		reports := api.Group("/reports")
		{
			if reportRateLimitMW != nil {
				reports.POST("", reportRateLimitMW, h.SubmitReport)
			} else {
				reports.POST("", h.SubmitReport)
			}
			reports.GET("/mine", h.ListMyReports)
			reports.GET("/:id", h.GetReport)
			reports.GET("/:id/tally", h.GetReportTally)
			reports.POST("/:id/verify", h.VerifyReport)
		}
	}

	internal := router.Group("/internal")
	internal.Use(internalMW)
	{
		internal.GET("/reports", h.InternalListReports)
		internal.PUT("/reports/:id/confidence", h.InternalSetConfidence)
		internal.POST("/reports/:id/resolve", h.InternalResolveReport)
		internal.DELETE("/locations/:id", h.InternalDeactivateLocation)
	}
}
