package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
	"marauder-server/internal/repository"
)

// Mock ProgressRepository
type ProgressRepository struct {
	mock.Mock
}

func (m *ProgressRepository) Get(ctx context.Context, playerID, questID uuid.UUID) (*models.QuestProgress, error) {
	args := m.Called(ctx, playerID, questID)
	p, _ := args.Get(0).(*models.QuestProgress)
	return p, args.Error(1)
}
func (m *ProgressRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.QuestProgress, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.QuestProgress)
	return p, args.Error(1)
}
func (m *ProgressRepository) Create(ctx context.Context, playerID, questID uuid.UUID, status models.QuestStatus) (*models.QuestProgress, error) {
	args := m.Called(ctx, playerID, questID, status)
	p, _ := args.Get(0).(*models.QuestProgress)
	return p, args.Error(1)
}
func (m *ProgressRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuestStatus) (*models.QuestProgress, error) {
	args := m.Called(ctx, id, status)
	p, _ := args.Get(0).(*models.QuestProgress)
	return p, args.Error(1)
}
func (m *ProgressRepository) MarkCompletedTx(ctx context.Context, tx repository.DBTX, id uuid.UUID) (*models.QuestProgress, error) {
	args := m.Called(ctx, tx, id)
	p, _ := args.Get(0).(*models.QuestProgress)
	return p, args.Error(1)
}
func (m *ProgressRepository) ListByStatus(ctx context.Context, playerID uuid.UUID, statuses []models.QuestStatus) ([]*models.QuestProgress, error) {
	args := m.Called(ctx, playerID, statuses)
	list, _ := args.Get(0).([]*models.QuestProgress)
	return list, args.Error(1)
}
func (m *ProgressRepository) CountByStatus(ctx context.Context, playerID uuid.UUID, statuses []models.QuestStatus) (int, error) {
	args := m.Called(ctx, playerID, statuses)
	return args.Int(0), args.Error(1)
}
