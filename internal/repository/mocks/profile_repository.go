package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
	"marauder-server/internal/repository"
)

// Mock ProfileRepository
type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PlayerProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileRepository) Create(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.PlayerProfile, error) {
	args := m.Called(ctx, id, upd)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileRepository) UpdatePosition(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.PlayerProfile, error) {
	args := m.Called(ctx, id, lat, lon)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileRepository) TouchLastSeen(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *ProfileRepository) AddExperienceTx(ctx context.Context, tx repository.DBTX, id uuid.UUID, xp int) (*models.PlayerProfile, error) {
	args := m.Called(ctx, tx, id, xp)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileRepository) GetAssignedWand(ctx context.Context, playerID uuid.UUID) (*models.Wand, error) {
	args := m.Called(ctx, playerID)
	w, _ := args.Get(0).(*models.Wand)
	return w, args.Error(1)
}
