package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
)

// Mock QuestRepository
type QuestRepository struct {
	mock.Mock
}

func (m *QuestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Quest, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*models.Quest)
	return q, args.Error(1)
}
func (m *QuestRepository) ListAvailable(ctx context.Context, playerID uuid.UUID, playerLevel int, lat, lon *float64, radius float64) ([]*models.Quest, error) {
	args := m.Called(ctx, playerID, playerLevel, lat, lon, radius)
	quests, _ := args.Get(0).([]*models.Quest)
	return quests, args.Error(1)
}
