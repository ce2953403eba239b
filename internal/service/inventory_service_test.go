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
	serviceMocks "marauder-server/internal/service/mocks"
)

func TestGrantItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()
	itemID := uuid.New()
	profile := &models.PlayerProfile{ID: playerID, UserID: userID}

	t.Run("Non-positive quantity is rejected", func(t *testing.T) {
		items := new(repoMocks.ItemRepository)
		inventory := new(repoMocks.InventoryRepository)
		profiles := new(serviceMocks.ProfileService)
		svc := service.NewInventoryService(items, inventory, profiles, zap.NewNop())

		_, err := svc.GrantItem(ctx, userID, itemID, 0)
		assert.ErrorIs(t, err, models.ErrInvalidQuantity)
	})

	t.Run("Unknown catalog item is rejected", func(t *testing.T) {
		items := new(repoMocks.ItemRepository)
		inventory := new(repoMocks.InventoryRepository)
		profiles := new(serviceMocks.ProfileService)
		svc := service.NewInventoryService(items, inventory, profiles, zap.NewNop())

		items.On("GetByID", ctx, itemID).Return(nil, models.ErrItemNotFound).Once()

		_, err := svc.GrantItem(ctx, userID, itemID, 1)
		assert.ErrorIs(t, err, models.ErrItemNotFound)
		inventory.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Grant merges into the existing stack", func(t *testing.T) {
		items := new(repoMocks.ItemRepository)
		inventory := new(repoMocks.InventoryRepository)
		profiles := new(serviceMocks.ProfileService)
		svc := service.NewInventoryService(items, inventory, profiles, zap.NewNop())

		item := &models.GameItem{ID: itemID, Name: "Dittany Leaf"}
		items.On("GetByID", ctx, itemID).Return(item, nil).Once()
		profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		inventory.On("Upsert", ctx, playerID, itemID, 3).
			Return(&models.InventoryEntry{PlayerID: playerID, ItemID: itemID, Quantity: 5}, nil).Once()

		entry, err := svc.GrantItem(ctx, userID, itemID, 3)
		assert.NoError(t, err)
		assert.Equal(t, 5, entry.Quantity)
		assert.Equal(t, item, entry.Item)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()
	itemID := uuid.New()
	profile := &models.PlayerProfile{ID: playerID, UserID: userID}

	t.Run("Stack removed entirely returns nil entry", func(t *testing.T) {
		items := new(repoMocks.ItemRepository)
		inventory := new(repoMocks.InventoryRepository)
		profiles := new(serviceMocks.ProfileService)
		svc := service.NewInventoryService(items, inventory, profiles, zap.NewNop())

		profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		inventory.On("Remove", ctx, playerID, itemID, 2).Return(nil, nil).Once()

		entry, err := svc.RemoveItem(ctx, userID, itemID, 2)
		assert.NoError(t, err)
		assert.Nil(t, entry)
	})
}
