package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"marauder-server/internal/models"
	repoMocks "marauder-server/internal/repository/mocks"
	"marauder-server/internal/service"
	serviceMocks "marauder-server/internal/service/mocks"
)

type questServiceFixture struct {
	quests    *repoMocks.QuestRepository
	progress  *repoMocks.ProgressRepository
	profiles  *serviceMocks.ProfileService
	profileRp *repoMocks.ProfileRepository
	inventory *repoMocks.InventoryRepository
	items     *repoMocks.ItemRepository
	svc       service.QuestService
}

func newQuestServiceFixture() *questServiceFixture {
	f := &questServiceFixture{
		quests:    new(repoMocks.QuestRepository),
		progress:  new(repoMocks.ProgressRepository),
		profiles:  new(serviceMocks.ProfileService),
		profileRp: new(repoMocks.ProfileRepository),
		inventory: new(repoMocks.InventoryRepository),
		items:     new(repoMocks.ItemRepository),
	}
	f.svc = service.NewQuestService(
		f.quests, f.progress, f.profiles, f.profileRp, f.inventory, f.items,
		&repoMocks.TxRunner{}, zap.NewNop(),
	)
	return f
}

func TestQuestAccept(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()
	questID := uuid.New()
	profile := &models.PlayerProfile{ID: playerID, UserID: userID, Level: 3, Experience: 2500}

	t.Run("First acceptance creates record in ACCEPTED", func(t *testing.T) {
		f := newQuestServiceFixture()
		quest := &models.Quest{ID: questID, MinPlayerLevel: 2, IsActive: true}
		created := &models.QuestProgress{ID: uuid.New(), PlayerID: playerID, QuestID: questID, Status: models.QuestStatusAccepted}

		f.quests.On("GetByID", ctx, questID).Return(quest, nil).Once()
		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("Get", ctx, playerID, questID).Return(nil, models.ErrProgressNotFound).Once()
		f.progress.On("Create", ctx, playerID, questID, models.QuestStatusAccepted).Return(created, nil).Once()

		got, err := f.svc.Accept(ctx, userID, questID)
		assert.NoError(t, err)
		assert.Equal(t, models.QuestStatusAccepted, got.Status)
		f.progress.AssertExpectations(t)
	})

	t.Run("Inactive quest behaves as missing", func(t *testing.T) {
		f := newQuestServiceFixture()
		f.quests.On("GetByID", ctx, questID).Return(&models.Quest{ID: questID, IsActive: false}, nil).Once()

		_, err := f.svc.Accept(ctx, userID, questID)
		assert.ErrorIs(t, err, models.ErrQuestNotFound)
	})

	t.Run("Level below minimum fails precondition", func(t *testing.T) {
		f := newQuestServiceFixture()
		f.quests.On("GetByID", ctx, questID).Return(&models.Quest{ID: questID, MinPlayerLevel: 10, IsActive: true}, nil).Once()
		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()

		_, err := f.svc.Accept(ctx, userID, questID)
		assert.ErrorIs(t, err, models.ErrQuestLevelTooLow)
	})

	t.Run("PENDING record is promoted to ACCEPTED", func(t *testing.T) {
		f := newQuestServiceFixture()
		pending := &models.QuestProgress{ID: uuid.New(), PlayerID: playerID, QuestID: questID, Status: models.QuestStatusPending}
		accepted := &models.QuestProgress{ID: pending.ID, PlayerID: playerID, QuestID: questID, Status: models.QuestStatusAccepted}

		f.quests.On("GetByID", ctx, questID).Return(&models.Quest{ID: questID, MinPlayerLevel: 1, IsActive: true}, nil).Once()
		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("Get", ctx, playerID, questID).Return(pending, nil).Once()
		f.progress.On("UpdateStatus", ctx, pending.ID, models.QuestStatusAccepted).Return(accepted, nil).Once()

		got, err := f.svc.Accept(ctx, userID, questID)
		assert.NoError(t, err)
		assert.Equal(t, models.QuestStatusAccepted, got.Status)
	})

	t.Run("Existing non-PENDING record conflicts", func(t *testing.T) {
		f := newQuestServiceFixture()
		inProgress := &models.QuestProgress{ID: uuid.New(), PlayerID: playerID, QuestID: questID, Status: models.QuestStatusInProgress}

		f.quests.On("GetByID", ctx, questID).Return(&models.Quest{ID: questID, MinPlayerLevel: 1, IsActive: true}, nil).Once()
		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("Get", ctx, playerID, questID).Return(inProgress, nil).Once()

		_, err := f.svc.Accept(ctx, userID, questID)
		assert.ErrorIs(t, err, models.ErrQuestAlreadyTaken)
	})
}

func TestQuestAdvance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()
	progressID := uuid.New()
	profile := &models.PlayerProfile{ID: playerID, UserID: userID, Level: 1}

	t.Run("Target COMPLETED is rejected as invalid", func(t *testing.T) {
		f := newQuestServiceFixture()
		_, err := f.svc.Advance(ctx, userID, progressID, models.QuestStatusCompleted)
		assert.ErrorIs(t, err, models.ErrInvalidStatus)
	})

	t.Run("IN_PROGRESS from PENDING is an implicit accept", func(t *testing.T) {
		f := newQuestServiceFixture()
		pending := &models.QuestProgress{ID: progressID, PlayerID: playerID, Status: models.QuestStatusPending}
		accepted := &models.QuestProgress{ID: progressID, PlayerID: playerID, Status: models.QuestStatusAccepted}

		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("GetByID", ctx, progressID).Return(pending, nil).Once()
		f.progress.On("UpdateStatus", ctx, progressID, models.QuestStatusAccepted).Return(accepted, nil).Once()

		got, err := f.svc.Advance(ctx, userID, progressID, models.QuestStatusInProgress)
		assert.NoError(t, err)
		assert.Equal(t, models.QuestStatusAccepted, got.Status)
	})

	t.Run("FAILED is applied regardless of prior status", func(t *testing.T) {
		f := newQuestServiceFixture()
		inProgress := &models.QuestProgress{ID: progressID, PlayerID: playerID, Status: models.QuestStatusInProgress}
		failed := &models.QuestProgress{ID: progressID, PlayerID: playerID, Status: models.QuestStatusFailed}

		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("GetByID", ctx, progressID).Return(inProgress, nil).Once()
		f.progress.On("UpdateStatus", ctx, progressID, models.QuestStatusFailed).Return(failed, nil).Once()

		got, err := f.svc.Advance(ctx, userID, progressID, models.QuestStatusFailed)
		assert.NoError(t, err)
		assert.Equal(t, models.QuestStatusFailed, got.Status)
	})

	t.Run("Foreign progress record is treated as missing", func(t *testing.T) {
		f := newQuestServiceFixture()
		foreign := &models.QuestProgress{ID: progressID, PlayerID: uuid.New(), Status: models.QuestStatusAccepted}

		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("GetByID", ctx, progressID).Return(foreign, nil).Once()

		_, err := f.svc.Advance(ctx, userID, progressID, models.QuestStatusFailed)
		assert.ErrorIs(t, err, models.ErrProgressNotFound)
	})
}

func TestQuestComplete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()
	progressID := uuid.New()
	questID := uuid.New()
	itemID := uuid.New()
	profile := &models.PlayerProfile{ID: playerID, UserID: userID, Level: 1, Experience: 800}

	t.Run("Completion credits xp and item atomically", func(t *testing.T) {
		f := newQuestServiceFixture()
		inProgress := &models.QuestProgress{ID: progressID, PlayerID: playerID, QuestID: questID, Status: models.QuestStatusInProgress}
		completed := &models.QuestProgress{ID: progressID, PlayerID: playerID, QuestID: questID, Status: models.QuestStatusCompleted}
		quest := &models.Quest{ID: questID, XPReward: 500, ItemRewardID: &itemID, IsActive: true}
		leveled := &models.PlayerProfile{ID: playerID, UserID: userID, Level: 2, Experience: 1300}
		item := &models.GameItem{ID: itemID, Name: "Dittany Leaf"}

		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("GetByID", ctx, progressID).Return(inProgress, nil).Once()
		f.quests.On("GetByID", ctx, questID).Return(quest, nil).Once()
		f.progress.On("MarkCompletedTx", ctx, mock.Anything, progressID).Return(completed, nil).Once()
		f.profileRp.On("GetByID", ctx, playerID).Return(profile, nil).Once()
		f.profileRp.On("AddExperienceTx", ctx, mock.Anything, playerID, 500).Return(leveled, nil).Once()
		f.inventory.On("UpsertTx", ctx, mock.Anything, playerID, itemID, 1).
			Return(&models.InventoryEntry{PlayerID: playerID, ItemID: itemID, Quantity: 2}, nil).Once()
		f.items.On("GetByID", ctx, itemID).Return(item, nil).Once()
		f.profiles.On("InvalidateCache", ctx, userID).Return().Once()

		reward, err := f.svc.Complete(ctx, userID, progressID)
		assert.NoError(t, err)
		assert.Equal(t, 500, reward.XPGranted)
		assert.Equal(t, 1300, reward.NewExperience)
		assert.Equal(t, 2, reward.NewLevel)
		assert.True(t, reward.LeveledUp)
		assert.Equal(t, item, reward.GrantedItem)
		assert.Equal(t, models.QuestStatusCompleted, reward.Progress.Status)
		f.inventory.AssertExpectations(t)
		f.profiles.AssertExpectations(t)
	})

	t.Run("Racing second completion conflicts without double credit", func(t *testing.T) {
		f := newQuestServiceFixture()
		inProgress := &models.QuestProgress{ID: progressID, PlayerID: playerID, QuestID: questID, Status: models.QuestStatusInProgress}
		completed := &models.QuestProgress{ID: progressID, PlayerID: playerID, QuestID: questID, Status: models.QuestStatusCompleted}
		quest := &models.Quest{ID: questID, XPReward: 500, IsActive: true}
		leveled := &models.PlayerProfile{ID: playerID, UserID: userID, Level: 2, Experience: 1300}

		// Оба вызова читают еще не завершенный статус, как под read committed
		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Twice()
		f.progress.On("GetByID", ctx, progressID).Return(inProgress, nil).Twice()
		f.quests.On("GetByID", ctx, questID).Return(quest, nil).Twice()
		f.profileRp.On("GetByID", ctx, playerID).Return(profile, nil).Once()
		f.profileRp.On("AddExperienceTx", ctx, mock.Anything, playerID, 500).Return(leveled, nil).Once()
		f.profiles.On("InvalidateCache", ctx, userID).Return().Once()
		// Условный UPDATE пропускает только первую транзакцию
		f.progress.On("MarkCompletedTx", ctx, mock.Anything, progressID).Return(completed, nil).Once()
		f.progress.On("MarkCompletedTx", ctx, mock.Anything, progressID).Return(nil, models.ErrQuestAlreadyCompleted).Once()

		_, err := f.svc.Complete(ctx, userID, progressID)
		assert.NoError(t, err)

		_, err = f.svc.Complete(ctx, userID, progressID)
		assert.ErrorIs(t, err, models.ErrQuestAlreadyCompleted)
		f.profileRp.AssertNumberOfCalls(t, "AddExperienceTx", 1)
		f.profiles.AssertNumberOfCalls(t, "InvalidateCache", 1)
	})

	t.Run("Already completed record conflicts without side effects", func(t *testing.T) {
		f := newQuestServiceFixture()
		done := &models.QuestProgress{ID: progressID, PlayerID: playerID, QuestID: questID, Status: models.QuestStatusCompleted}

		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("GetByID", ctx, progressID).Return(done, nil).Once()

		_, err := f.svc.Complete(ctx, userID, progressID)
		assert.ErrorIs(t, err, models.ErrQuestAlreadyCompleted)
		f.profileRp.AssertNotCalled(t, "AddExperienceTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Repository failure inside transaction aborts the whole reward", func(t *testing.T) {
		f := newQuestServiceFixture()
		inProgress := &models.QuestProgress{ID: progressID, PlayerID: playerID, QuestID: questID, Status: models.QuestStatusAccepted}
		quest := &models.Quest{ID: questID, XPReward: 100, IsActive: true}

		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.progress.On("GetByID", ctx, progressID).Return(inProgress, nil).Once()
		f.quests.On("GetByID", ctx, questID).Return(quest, nil).Once()
		f.progress.On("MarkCompletedTx", ctx, mock.Anything, progressID).Return(nil, models.ErrInternalServer).Once()

		_, err := f.svc.Complete(ctx, userID, progressID)
		assert.Error(t, err)
		f.profileRp.AssertNotCalled(t, "AddExperienceTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
