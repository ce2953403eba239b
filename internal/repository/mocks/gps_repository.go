package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
)

// Mock GPSTraceRepository
type GPSTraceRepository struct {
	mock.Mock
}

func (m *GPSTraceRepository) Append(ctx context.Context, playerID uuid.UUID, lat, lon float64) error {
	args := m.Called(ctx, playerID, lat, lon)
	return args.Error(0)
}
func (m *GPSTraceRepository) ListRecent(ctx context.Context, playerID uuid.UUID, limit int) ([]*models.GPSTrace, error) {
	args := m.Called(ctx, playerID, limit)
	traces, _ := args.Get(0).([]*models.GPSTrace)
	return traces, args.Error(1)
}
