package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marauder-server/internal/models"
	"marauder-server/internal/repository"
)

// InventoryService handles the item catalog and per-player inventories.
type InventoryService interface {
	ListCatalog(ctx context.Context) ([]*models.GameItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.GameItem, error)
	ListInventory(ctx context.Context, userID uuid.UUID) ([]*models.InventoryEntry, error)
	// GrantItem adds quantity units of the item, merging with an existing
	// stack when present.
	GrantItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error)
	// RemoveItem removes quantity units; the stack disappears at zero.
	// Returns nil entry when the stack was removed entirely.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error)
}

var _ InventoryService = (*inventoryServiceImpl)(nil)

type inventoryServiceImpl struct {
	items     repository.ItemRepository
	inventory repository.InventoryRepository
	profiles  ProfileService
	logger    *zap.Logger
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(
	items repository.ItemRepository,
	inventory repository.InventoryRepository,
	profiles ProfileService,
	logger *zap.Logger,
) InventoryService {
	return &inventoryServiceImpl{
		items:     items,
		inventory: inventory,
		profiles:  profiles,
		logger:    logger.Named("InventoryService"),
	}
}

func (s *inventoryServiceImpl) ListCatalog(ctx context.Context) ([]*models.GameItem, error) {
	return s.items.List(ctx)
}

func (s *inventoryServiceImpl) GetItem(ctx context.Context, itemID uuid.UUID) (*models.GameItem, error) {
	return s.items.GetByID(ctx, itemID)
}

func (s *inventoryServiceImpl) ListInventory(ctx context.Context, userID uuid.UUID) ([]*models.InventoryEntry, error) {
	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.inventory.ListByPlayer(ctx, profile.ID)
}

func (s *inventoryServiceImpl) GrantItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	// Каталожная запись должна существовать до любых записей в инвентарь
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := s.inventory.Upsert(ctx, profile.ID, itemID, quantity)
	if err != nil {
		return nil, err
	}
	entry.Item = item

	s.logger.Info("Item granted",
		zap.String("playerID", profile.ID.String()),
		zap.String("itemID", itemID.String()),
		zap.Int("quantity", quantity),
		zap.Int("newQuantity", entry.Quantity))
	return entry, nil
}

func (s *inventoryServiceImpl) RemoveItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.inventory.Remove(ctx, profile.ID, itemID, quantity)
}
