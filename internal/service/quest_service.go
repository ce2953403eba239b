package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marauder-server/internal/models"
	"marauder-server/internal/repository"
)

// QuestService реализует каталог квестов и state machine их прохождения.
type QuestService interface {
	// ListAvailable returns active quests the player can take right now,
	// geofenced to the player's last known position when it exists.
	ListAvailable(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*models.QuestProgress, error)
	ListCompleted(ctx context.Context, userID uuid.UUID) ([]*models.QuestProgress, error)
	Accept(ctx context.Context, userID, questID uuid.UUID) (*models.QuestProgress, error)
	// Advance moves the progress record to IN_PROGRESS or FAILED.
	Advance(ctx context.Context, userID, progressID uuid.UUID, target models.QuestStatus) (*models.QuestProgress, error)
	// Complete finishes the quest and atomically credits its rewards.
	Complete(ctx context.Context, userID, progressID uuid.UUID) (*models.CompletionReward, error)
}

var _ QuestService = (*questServiceImpl)(nil)

type questServiceImpl struct {
	quests    repository.QuestRepository
	progress  repository.ProgressRepository
	profiles  ProfileService
	inventory repository.InventoryRepository
	profileRp repository.ProfileRepository
	items     repository.ItemRepository
	tx        repository.TxRunner
	logger    *zap.Logger
}

// NewQuestService creates a new QuestService.
func NewQuestService(
	quests repository.QuestRepository,
	progress repository.ProgressRepository,
	profiles ProfileService,
	profileRepo repository.ProfileRepository,
	inventory repository.InventoryRepository,
	items repository.ItemRepository,
	tx repository.TxRunner,
	logger *zap.Logger,
) QuestService {
	return &questServiceImpl{
		quests:    quests,
		progress:  progress,
		profiles:  profiles,
		profileRp: profileRepo,
		inventory: inventory,
		items:     items,
		tx:        tx,
		logger:    logger.Named("QuestService"),
	}
}

func (s *questServiceImpl) ListAvailable(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error) {
	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.quests.ListAvailable(ctx, profile.ID, profile.Level, profile.Latitude, profile.Longitude, GeofenceRadiusDegrees)
}

func (s *questServiceImpl) ListActive(ctx context.Context, userID uuid.UUID) ([]*models.QuestProgress, error) {
	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.progress.ListByStatus(ctx, profile.ID,
		[]models.QuestStatus{models.QuestStatusAccepted, models.QuestStatusInProgress})
}

func (s *questServiceImpl) ListCompleted(ctx context.Context, userID uuid.UUID) ([]*models.QuestProgress, error) {
	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.progress.ListByStatus(ctx, profile.ID, []models.QuestStatus{models.QuestStatusCompleted})
}

// Accept берет квест. Существующая запись прогресса не в PENDING означает,
// что квест уже взят или завершен.
func (s *questServiceImpl) Accept(ctx context.Context, userID, questID uuid.UUID) (*models.QuestProgress, error) {
	quest, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return nil, err
	}
	if !quest.IsActive {
		return nil, models.ErrQuestNotFound
	}

	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Level < quest.MinPlayerLevel {
		return nil, models.ErrQuestLevelTooLow
	}

	existing, err := s.progress.Get(ctx, profile.ID, questID)
	switch {
	case errors.Is(err, models.ErrProgressNotFound):
		created, err := s.progress.Create(ctx, profile.ID, questID, models.QuestStatusAccepted)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Quest accepted",
			zap.String("playerID", profile.ID.String()), zap.String("questID", questID.String()))
		return created, nil
	case err != nil:
		return nil, err
	case existing.Status == models.QuestStatusPending:
		return s.progress.UpdateStatus(ctx, existing.ID, models.QuestStatusAccepted)
	default:
		return nil, models.ErrQuestAlreadyTaken
	}
}

func (s *questServiceImpl) Advance(ctx context.Context, userID, progressID uuid.UUID, target models.QuestStatus) (*models.QuestProgress, error) {
	if target != models.QuestStatusInProgress && target != models.QuestStatusFailed {
		return nil, models.ErrInvalidStatus
	}

	progress, err := s.ownedProgress(ctx, userID, progressID)
	if err != nil {
		return nil, err
	}

	// Запрос IN_PROGRESS из PENDING трактуется как неявный accept
	if target == models.QuestStatusInProgress && progress.Status == models.QuestStatusPending {
		target = models.QuestStatusAccepted
	}

	return s.progress.UpdateStatus(ctx, progress.ID, target)
}

// Complete завершает квест. Начисление опыта, выдача предмета и отметка
// COMPLETED применяются атомарно: либо все, либо ничего.
func (s *questServiceImpl) Complete(ctx context.Context, userID, progressID uuid.UUID) (*models.CompletionReward, error) {
	progress, err := s.ownedProgress(ctx, userID, progressID)
	if err != nil {
		return nil, err
	}
	// Быстрая проверка; решающий барьер - условный UPDATE внутри транзакции
	if progress.Status == models.QuestStatusCompleted {
		return nil, models.ErrQuestAlreadyCompleted
	}

	quest, err := s.quests.GetByID(ctx, progress.QuestID)
	if err != nil {
		return nil, err
	}

	reward := &models.CompletionReward{XPGranted: quest.XPReward}
	oldLevel := 0

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx repository.DBTX) error {
		completed, err := s.progress.MarkCompletedTx(ctx, tx, progress.ID)
		if err != nil {
			return err
		}
		reward.Progress = completed

		profile, err := s.profileRp.GetByID(ctx, progress.PlayerID)
		if err != nil {
			return err
		}
		oldLevel = profile.Level

		updated, err := s.profileRp.AddExperienceTx(ctx, tx, progress.PlayerID, quest.XPReward)
		if err != nil {
			return err
		}
		reward.NewExperience = updated.Experience
		reward.NewLevel = updated.Level

		if quest.ItemRewardID != nil {
			if _, err := s.inventory.UpsertTx(ctx, tx, progress.PlayerID, *quest.ItemRewardID, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Профиль и дашборд в кэше отражают уровень до награды
	s.profiles.InvalidateCache(ctx, userID)

	reward.LeveledUp = reward.NewLevel > oldLevel
	if quest.ItemRewardID != nil {
		if item, err := s.items.GetByID(ctx, *quest.ItemRewardID); err == nil {
			reward.GrantedItem = item
		}
	}

	s.logger.Info("Quest completed",
		zap.String("playerID", progress.PlayerID.String()),
		zap.String("questID", progress.QuestID.String()),
		zap.Int("xpGranted", reward.XPGranted),
		zap.Bool("leveledUp", reward.LeveledUp))
	return reward, nil
}

// ownedProgress загружает запись прогресса и проверяет, что она принадлежит
// вызывающему. Чужая запись неотличима от несуществующей.
func (s *questServiceImpl) ownedProgress(ctx context.Context, userID, progressID uuid.UUID) (*models.QuestProgress, error) {
	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.progress.GetByID(ctx, progressID)
	if err != nil {
		return nil, err
	}
	if progress.PlayerID != profile.ID {
		return nil, models.ErrProgressNotFound
	}
	return progress, nil
}
