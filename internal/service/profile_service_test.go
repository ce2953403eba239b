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
)

func TestGetOrCreateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Existing profile is returned as is", func(t *testing.T) {
		profiles := new(repoMocks.ProfileRepository)
		traces := new(repoMocks.GPSTraceRepository)
		svc := service.NewProfileService(profiles, traces, nil, zap.NewNop())

		existing := &models.PlayerProfile{ID: uuid.New(), UserID: userID, Level: 4}
		profiles.On("GetByUserID", ctx, userID).Return(existing, nil).Once()
		profiles.On("TouchLastSeen", ctx, existing.ID).Return(nil).Once()

		got, err := svc.GetOrCreateProfile(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, existing, got)
		profiles.AssertNotCalled(t, "Create", ctx, userID)
	})

	t.Run("Read-through bumps last_seen", func(t *testing.T) {
		profiles := new(repoMocks.ProfileRepository)
		traces := new(repoMocks.GPSTraceRepository)
		svc := service.NewProfileService(profiles, traces, nil, zap.NewNop())

		existing := &models.PlayerProfile{ID: uuid.New(), UserID: userID, Level: 4}
		profiles.On("GetByUserID", ctx, userID).Return(existing, nil).Once()
		profiles.On("TouchLastSeen", ctx, existing.ID).Return(nil).Once()

		_, err := svc.GetOrCreateProfile(ctx, userID)
		assert.NoError(t, err)
		profiles.AssertExpectations(t)
	})

	t.Run("Failed last_seen touch does not fail the read", func(t *testing.T) {
		profiles := new(repoMocks.ProfileRepository)
		traces := new(repoMocks.GPSTraceRepository)
		svc := service.NewProfileService(profiles, traces, nil, zap.NewNop())

		existing := &models.PlayerProfile{ID: uuid.New(), UserID: userID, Level: 4}
		profiles.On("GetByUserID", ctx, userID).Return(existing, nil).Once()
		profiles.On("TouchLastSeen", ctx, existing.ID).Return(models.ErrInternalServer).Once()

		got, err := svc.GetOrCreateProfile(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("Missing profile is created on first access", func(t *testing.T) {
		profiles := new(repoMocks.ProfileRepository)
		traces := new(repoMocks.GPSTraceRepository)
		svc := service.NewProfileService(profiles, traces, nil, zap.NewNop())

		created := &models.PlayerProfile{ID: uuid.New(), UserID: userID, Level: 1}
		profiles.On("GetByUserID", ctx, userID).Return(nil, models.ErrProfileNotFound).Once()
		profiles.On("Create", ctx, userID).Return(created, nil).Once()
		profiles.On("TouchLastSeen", ctx, created.ID).Return(nil).Once()

		got, err := svc.GetOrCreateProfile(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
		profiles.AssertExpectations(t)
	})
}

func TestUpdateProfileValidation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	profiles := new(repoMocks.ProfileRepository)
	traces := new(repoMocks.GPSTraceRepository)
	svc := service.NewProfileService(profiles, traces, nil, zap.NewNop())

	bad := models.House("DURMSTRANG")
	_, err := svc.UpdateProfile(ctx, userID, models.ProfileUpdate{House: &bad})
	assert.ErrorIs(t, err, models.ErrInvalidHouse)
	profiles.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePosition(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()

	t.Run("Out of range coordinates are rejected", func(t *testing.T) {
		profiles := new(repoMocks.ProfileRepository)
		traces := new(repoMocks.GPSTraceRepository)
		svc := service.NewProfileService(profiles, traces, nil, zap.NewNop())

		_, err := svc.UpdatePosition(ctx, userID, 91.0, 0.0)
		assert.ErrorIs(t, err, models.ErrInvalidCoordinates)
	})

	t.Run("Position update appends a movement trace", func(t *testing.T) {
		profiles := new(repoMocks.ProfileRepository)
		traces := new(repoMocks.GPSTraceRepository)
		svc := service.NewProfileService(profiles, traces, nil, zap.NewNop())

		profile := &models.PlayerProfile{ID: playerID, UserID: userID}
		lat, lon := 51.5, -0.08
		updated := &models.PlayerProfile{ID: playerID, UserID: userID, Latitude: &lat, Longitude: &lon}

		profiles.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		profiles.On("TouchLastSeen", ctx, playerID).Return(nil).Once()
		profiles.On("UpdatePosition", ctx, playerID, lat, lon).Return(updated, nil).Once()
		traces.On("Append", ctx, playerID, lat, lon).Return(nil).Once()

		got, err := svc.UpdatePosition(ctx, userID, lat, lon)
		assert.NoError(t, err)
		assert.True(t, got.HasPosition())
		traces.AssertExpectations(t)
	})
}
