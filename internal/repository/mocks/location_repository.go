package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
)

// Mock LocationRepository
type LocationRepository struct {
	mock.Mock
}

func (m *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MagicalLocation, error) {
	args := m.Called(ctx, id)
	loc, _ := args.Get(0).(*models.MagicalLocation)
	return loc, args.Error(1)
}
func (m *LocationRepository) ListNearby(ctx context.Context, lat, lon, radius float64) ([]*models.MagicalLocation, error) {
	args := m.Called(ctx, lat, lon, radius)
	locs, _ := args.Get(0).([]*models.MagicalLocation)
	return locs, args.Error(1)
}
func (m *LocationRepository) Create(ctx context.Context, loc *models.MagicalLocation) (*models.MagicalLocation, error) {
	args := m.Called(ctx, loc)
	created, _ := args.Get(0).(*models.MagicalLocation)
	return created, args.Error(1)
}
func (m *LocationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *LocationRepository) AdjustVerificationScore(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}
