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

// ProfileService handles player profiles, positions and movement history.
type ProfileService interface {
	// GetOrCreateProfile returns the profile for the account, creating an
	// empty one on first access.
	GetOrCreateProfile(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.PlayerProfile, error)
	UpdatePosition(ctx context.Context, userID uuid.UUID, lat, lon float64) (*models.PlayerProfile, error)
	GetAssignedWand(ctx context.Context, playerID uuid.UUID) (*models.Wand, error)
	ListTraces(ctx context.Context, userID uuid.UUID, limit int) ([]*models.GPSTrace, error)
	// InvalidateCache drops the cached profile and dashboard snapshots.
	// Вызывается после записей в профиль в обход этого сервиса (награды квестов).
	InvalidateCache(ctx context.Context, userID uuid.UUID)
}

var _ ProfileService = (*profileServiceImpl)(nil)

type profileServiceImpl struct {
	profiles repository.ProfileRepository
	traces   repository.GPSTraceRepository
	cache    *cache.Client
	logger   *zap.Logger
}

// NewProfileService creates a new ProfileService. Кэш опционален: nil отключает кэширование.
func NewProfileService(
	profiles repository.ProfileRepository,
	traces repository.GPSTraceRepository,
	cacheClient *cache.Client,
	logger *zap.Logger,
) ProfileService {
	return &profileServiceImpl{
		profiles: profiles,
		traces:   traces,
		cache:    cacheClient,
		logger:   logger.Named("ProfileService"),
	}
}

func (s *profileServiceImpl) GetOrCreateProfile(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error) {
	if s.cache != nil {
		cached := &models.PlayerProfile{}
		if err := s.cache.GetJSON(ctx, cache.ProfileKey(userID), cached); err == nil {
			s.touchLastSeen(ctx, cached.ID)
			return cached, nil
		}
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, models.ErrProfileNotFound) {
		profile, err = s.profiles.Create(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	s.touchLastSeen(ctx, profile.ID)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.ProfileKey(userID), profile, cache.ProfileTTL); err != nil {
			s.logger.Warn("Failed to cache profile", zap.Error(err), zap.String("userID", userID.String()))
		}
	}
	return profile, nil
}

// touchLastSeen отмечает активность игрока на каждом чтении профиля.
// Не критично для ответа: ошибку логируем и едем дальше.
func (s *profileServiceImpl) touchLastSeen(ctx context.Context, playerID uuid.UUID) {
	if err := s.profiles.TouchLastSeen(ctx, playerID); err != nil {
		s.logger.Warn("Failed to touch last_seen", zap.Error(err), zap.String("playerID", playerID.String()))
	}
}

func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.PlayerProfile, error) {
	if upd.House != nil && !upd.House.IsValid() {
		return nil, models.ErrInvalidHouse
	}

	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.profiles.UpdateProfile(ctx, profile.ID, upd)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return updated, nil
}

// UpdatePosition stores the new last-known position and appends it to the
// movement history.
func (s *profileServiceImpl) UpdatePosition(ctx context.Context, userID uuid.UUID, lat, lon float64) (*models.PlayerProfile, error) {
	if !ValidCoordinates(lat, lon) {
		return nil, models.ErrInvalidCoordinates
	}

	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.profiles.UpdatePosition(ctx, profile.ID, lat, lon)
	if err != nil {
		return nil, err
	}

	// История перемещений не критична для ответа: ошибку логируем и едем дальше
	if err := s.traces.Append(ctx, profile.ID, lat, lon); err != nil {
		s.logger.Warn("Failed to append gps trace", zap.Error(err), zap.String("playerID", profile.ID.String()))
	}

	s.invalidate(ctx, userID)
	return updated, nil
}

func (s *profileServiceImpl) GetAssignedWand(ctx context.Context, playerID uuid.UUID) (*models.Wand, error) {
	return s.profiles.GetAssignedWand(ctx, playerID)
}

func (s *profileServiceImpl) ListTraces(ctx context.Context, userID uuid.UUID, limit int) ([]*models.GPSTrace, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.traces.ListRecent(ctx, profile.ID, limit)
}

func (s *profileServiceImpl) InvalidateCache(ctx context.Context, userID uuid.UUID) {
	s.invalidate(ctx, userID)
}

func (s *profileServiceImpl) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, cache.ProfileKey(userID), cache.DashboardKey(userID))
	}
}
