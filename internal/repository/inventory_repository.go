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

// InventoryRepository stores per-player item quantities.
type InventoryRepository interface {
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*models.InventoryEntry, error)
	GetEntry(ctx context.Context, playerID, itemID uuid.UUID) (*models.InventoryEntry, error)
	Upsert(ctx context.Context, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error)
	UpsertTx(ctx context.Context, tx DBTX, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error)
	Remove(ctx context.Context, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error)
}

var _ InventoryRepository = (*pgInventoryRepository)(nil)

type pgInventoryRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgInventoryRepository creates a new PostgreSQL-backed InventoryRepository.
func NewPgInventoryRepository(db DBTX, logger *zap.Logger) InventoryRepository {
	return &pgInventoryRepository{
		db:     db,
		logger: logger.Named("PgInventoryRepo"),
	}
}

const inventoryColumns = `id, player_id, item_id, quantity, created_at, updated_at`

// ListByPlayer returns the player's inventory with catalog details attached.
func (r *pgInventoryRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*models.InventoryEntry, error) {
	query := `SELECT pi.id, pi.player_id, pi.item_id, pi.quantity, pi.created_at, pi.updated_at,
			gi.id AS "item.id", gi.name AS "item.name", gi.description AS "item.description",
			gi.item_type AS "item.item_type", gi.image_url AS "item.image_url", gi.rarity AS "item.rarity"
		FROM player_inventory pi
		JOIN game_items gi ON gi.id = pi.item_id
		WHERE pi.player_id = $1
		ORDER BY gi.name`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		r.logger.Error("Failed to list inventory", zap.Error(err), zap.String("playerID", playerID.String()))
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.InventoryEntry, 0)
	for rows.Next() {
		e := &models.InventoryEntry{Item: &models.GameItem{}}
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.ItemID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt,
			&e.Item.ID, &e.Item.Name, &e.Item.Description, &e.Item.ItemType, &e.Item.ImageURL, &e.Item.Rarity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *pgInventoryRepository) GetEntry(ctx context.Context, playerID, itemID uuid.UUID) (*models.InventoryEntry, error) {
	query := `SELECT ` + inventoryColumns + ` FROM player_inventory WHERE player_id = $1 AND item_id = $2`
	e := &models.InventoryEntry{}
	if err := pgxscan.Get(ctx, r.db, e, query, playerID, itemID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory entry: %w", err)
	}
	return e, nil
}

// Upsert увеличивает quantity существующей записи либо создает новую.
// Пара (player, item) уникальна на уровне схемы.
func (r *pgInventoryRepository) Upsert(ctx context.Context, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	return r.UpsertTx(ctx, r.db, playerID, itemID, quantity)
}

func (r *pgInventoryRepository) UpsertTx(ctx context.Context, tx DBTX, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	query := `INSERT INTO player_inventory (player_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, item_id)
		DO UPDATE SET quantity = player_inventory.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING ` + inventoryColumns

	e := &models.InventoryEntry{}
	err := tx.QueryRow(ctx, query, playerID, itemID, quantity).
		Scan(&e.ID, &e.PlayerID, &e.ItemID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to upsert inventory entry", zap.Error(err),
			zap.String("playerID", playerID.String()), zap.String("itemID", itemID.String()))
		return nil, fmt.Errorf("failed to upsert inventory entry: %w", err)
	}
	return e, nil
}

// Remove decrements quantity, deleting the row when it reaches zero.
// Returns nil entry when the row was deleted. Оба шага условные: предикат
// по quantity не дает двум конкурентным remove увести остаток в минус.
func (r *pgInventoryRepository) Remove(ctx context.Context, playerID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	query := `UPDATE player_inventory SET quantity = quantity - $3, updated_at = now()
		WHERE player_id = $1 AND item_id = $2 AND quantity > $3
		RETURNING ` + inventoryColumns
	e := &models.InventoryEntry{}
	err := r.db.QueryRow(ctx, query, playerID, itemID, quantity).
		Scan(&e.ID, &e.PlayerID, &e.ItemID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to decrement inventory entry: %w", err)
	}

	// Снимается весь остаток (или строки нет): удаляем стек целиком
	delQuery := `DELETE FROM player_inventory WHERE player_id = $1 AND item_id = $2 RETURNING id`
	var deletedID uuid.UUID
	if err := r.db.QueryRow(ctx, delQuery, playerID, itemID).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to delete inventory entry: %w", err)
	}
	return nil, nil
}
