package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"marauder-server/internal/models"
	repoMocks "marauder-server/internal/repository/mocks"
	"marauder-server/internal/service"
	serviceMocks "marauder-server/internal/service/mocks"
)

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()
	profile := &models.PlayerProfile{ID: playerID, UserID: userID, Level: 3, Experience: 2400}

	t.Run("Aggregates profile, wand and quest counters", func(t *testing.T) {
		profiles := new(serviceMocks.ProfileService)
		progress := new(repoMocks.ProgressRepository)
		svc := service.NewDashboardService(profiles, progress, nil, zap.NewNop())

		wand := &models.Wand{ID: uuid.New(), Core: models.WandCorePhoenixFeather, WoodType: models.WoodTypeHolly}

		profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		profiles.On("GetAssignedWand", ctx, playerID).Return(wand, nil).Once()
		progress.On("CountByStatus", ctx, playerID, []models.QuestStatus{models.QuestStatusCompleted}).Return(7, nil).Once()
		progress.On("CountByStatus", ctx, playerID, []models.QuestStatus{models.QuestStatusPending}).Return(1, nil).Once()
		progress.On("CountByStatus", ctx, playerID,
			[]models.QuestStatus{models.QuestStatusAccepted, models.QuestStatusInProgress}).Return(2, nil).Once()

		dashboard, err := svc.GetDashboard(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, profile, dashboard.Profile)
		assert.Equal(t, wand, dashboard.Wand)
		assert.Equal(t, 7, dashboard.CompletedQuests)
		assert.Equal(t, 1, dashboard.PendingQuests)
		assert.Equal(t, 2, dashboard.ActiveQuests)
	})

	t.Run("Missing wand is not an error", func(t *testing.T) {
		profiles := new(serviceMocks.ProfileService)
		progress := new(repoMocks.ProgressRepository)
		svc := service.NewDashboardService(profiles, progress, nil, zap.NewNop())

		profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		profiles.On("GetAssignedWand", ctx, playerID).Return(nil, models.ErrWandNotFound).Once()
		progress.On("CountByStatus", ctx, playerID, []models.QuestStatus{models.QuestStatusCompleted}).Return(0, nil).Once()
		progress.On("CountByStatus", ctx, playerID, []models.QuestStatus{models.QuestStatusPending}).Return(0, nil).Once()
		progress.On("CountByStatus", ctx, playerID,
			[]models.QuestStatus{models.QuestStatusAccepted, models.QuestStatusInProgress}).Return(0, nil).Once()

		dashboard, err := svc.GetDashboard(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, dashboard.Wand)
	})
}
