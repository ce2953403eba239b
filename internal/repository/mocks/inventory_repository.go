package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
	"marauder-server/internal/repository"
)

// Mock InventoryRepository
type InventoryRepository struct {
	mock.Mock
}

func (m *InventoryRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*models.InventoryEntry, error) {
	args := m.Called(ctx, playerID)
	entries, _ := args.Get(0).([]*models.InventoryEntry)
	return entries, args.Error(1)
}
func (m *InventoryRepository) GetEntry(ctx context.Context, playerID, itemID uuid.UUID) (*models.InventoryEntry, error) {
	args := m.Called(ctx, playerID, itemID)
	e, _ := args.Get(0).(*models.InventoryEntry)
	return e, args.Error(1)
}
func (m *InventoryRepository) Upsert(ctx context.Context, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	args := m.Called(ctx, playerID, itemID, quantity)
	e, _ := args.Get(0).(*models.InventoryEntry)
	return e, args.Error(1)
}
func (m *InventoryRepository) UpsertTx(ctx context.Context, tx repository.DBTX, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	args := m.Called(ctx, tx, playerID, itemID, quantity)
	e, _ := args.Get(0).(*models.InventoryEntry)
	return e, args.Error(1)
}
func (m *InventoryRepository) Remove(ctx context.Context, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	args := m.Called(ctx, playerID, itemID, quantity)
	e, _ := args.Get(0).(*models.InventoryEntry)
	return e, args.Error(1)
}
