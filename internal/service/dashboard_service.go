package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marauder-server/internal/cache"
	"marauder-server/internal/models"
	"marauder-server/internal/repository"
)

// Dashboard is the aggregate the mobile client renders on its home screen.
type Dashboard struct {
	Profile         *models.PlayerProfile `json:"profile"`
	Wand            *models.Wand          `json:"wand,omitempty"`
	CompletedQuests int                   `json:"completed_quests"`
	PendingQuests   int                   `json:"pending_quests"`
	ActiveQuests    int                   `json:"active_quests"`
}

// DashboardService собирает сводку по игроку за один вызов.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
}

var _ DashboardService = (*dashboardServiceImpl)(nil)

type dashboardServiceImpl struct {
	profiles ProfileService
	progress repository.ProgressRepository
	cache    *cache.Client
	logger   *zap.Logger
}

// NewDashboardService creates a new DashboardService. Кэш опционален.
func NewDashboardService(
	profiles ProfileService,
	progress repository.ProgressRepository,
	cacheClient *cache.Client,
	logger *zap.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		profiles: profiles,
		progress: progress,
		cache:    cacheClient,
		logger:   logger.Named("DashboardService"),
	}
}

// GetDashboard creates the profile on first access, so a brand-new player
// always gets a renderable dashboard.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	if s.cache != nil {
		cached := &Dashboard{}
		if err := s.cache.GetJSON(ctx, cache.DashboardKey(userID), cached); err == nil {
			return cached, nil
		}
	}

	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{Profile: profile}

	wand, err := s.profiles.GetAssignedWand(ctx, profile.ID)
	switch {
	case err == nil:
		dashboard.Wand = wand
	case errors.Is(err, models.ErrWandNotFound):
		// У новичка палочки еще нет
	default:
		return nil, err
	}

	counts := []struct {
		dest     *int
		statuses []models.QuestStatus
	}{
		{&dashboard.CompletedQuests, []models.QuestStatus{models.QuestStatusCompleted}},
		{&dashboard.PendingQuests, []models.QuestStatus{models.QuestStatusPending}},
		{&dashboard.ActiveQuests, []models.QuestStatus{models.QuestStatusAccepted, models.QuestStatusInProgress}},
	}
	for _, c := range counts {
		n, err := s.progress.CountByStatus(ctx, profile.ID, c.statuses)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.DashboardKey(userID), dashboard, cache.DashboardTTL); err != nil {
			s.logger.Warn("Failed to cache dashboard", zap.Error(err), zap.String("userID", userID.String()))
		}
	}
	return dashboard, nil
}
