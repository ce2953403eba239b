package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
)

// Mock ItemRepository
type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GameItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.GameItem)
	return item, args.Error(1)
}
func (m *ItemRepository) List(ctx context.Context) ([]*models.GameItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*models.GameItem)
	return items, args.Error(1)
}
