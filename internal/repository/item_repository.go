package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"marauder-server/internal/models"
)

// ItemRepository reads the immutable game item catalog.
type ItemRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.GameItem, error)
	List(ctx context.Context) ([]*models.GameItem, error)
}

var _ ItemRepository = (*pgItemRepository)(nil)

type pgItemRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgItemRepository creates a new PostgreSQL-backed ItemRepository.
func NewPgItemRepository(db DBTX, logger *zap.Logger) ItemRepository {
	return &pgItemRepository{
		db:     db,
		logger: logger.Named("PgItemRepo"),
	}
}

func (r *pgItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GameItem, error) {
	query := `SELECT id, name, description, item_type, image_url, rarity FROM game_items WHERE id = $1`
	item := &models.GameItem{}
	if err := pgxscan.Get(ctx, r.db, item, query, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrItemNotFound
		}
		r.logger.Error("Failed to get game item", zap.Error(err), zap.String("itemID", id.String()))
		return nil, fmt.Errorf("failed to get game item: %w", err)
	}
	return item, nil
}

func (r *pgItemRepository) List(ctx context.Context) ([]*models.GameItem, error) {
	query := `SELECT id, name, description, item_type, image_url, rarity FROM game_items ORDER BY name`
	items := make([]*models.GameItem, 0)
	if err := pgxscan.Select(ctx, r.db, &items, query); err != nil {
		r.logger.Error("Failed to list game items", zap.Error(err))
		return nil, fmt.Errorf("failed to list game items: %w", err)
	}
	return items, nil
}
