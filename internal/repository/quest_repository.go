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

// QuestRepository reads the quest catalog.
type QuestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Quest, error)
	// ListAvailable returns active quests the player can take: level gate
	// passed, geofence matched and not already finished (repeatable quests
	// ignore the completion exclusion).
	ListAvailable(ctx context.Context, playerID uuid.UUID, playerLevel int, lat, lon *float64, radius float64) ([]*models.Quest, error)
}

var _ QuestRepository = (*pgQuestRepository)(nil)

type pgQuestRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgQuestRepository creates a new PostgreSQL-backed QuestRepository.
func NewPgQuestRepository(db DBTX, logger *zap.Logger) QuestRepository {
	return &pgQuestRepository{
		db:     db,
		logger: logger.Named("PgQuestRepo"),
	}
}

const questColumns = `id, title, description, xp_reward, item_reward_id, min_player_level,
	target_location_id, is_repeatable, is_active, created_at`

func (r *pgQuestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests WHERE id = $1`
	q := &models.Quest{}
	if err := pgxscan.Get(ctx, r.db, q, query, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrQuestNotFound
		}
		r.logger.Error("Failed to get quest", zap.Error(err), zap.String("questID", id.String()))
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	return q, nil
}

func (r *pgQuestRepository) ListAvailable(ctx context.Context, playerID uuid.UUID, playerLevel int, lat, lon *float64, radius float64) ([]*models.Quest, error) {
	// Геофенс применяется только когда позиция игрока известна. Квест с
	// target_location тогда попадает в выдачу только при нахождении игрока
	// в bounding box вокруг точки. Повторяемые квесты не исключаются после
	// завершения.
	query := `SELECT q.id, q.title, q.description, q.xp_reward, q.item_reward_id, q.min_player_level,
			q.target_location_id, q.is_repeatable, q.is_active, q.created_at
		FROM quests q
		LEFT JOIN magical_locations ml ON ml.id = q.target_location_id
		WHERE q.is_active
		  AND q.min_player_level <= $2
		  AND (
			q.target_location_id IS NULL
			OR $3::float8 IS NULL OR $4::float8 IS NULL
			OR (
				ml.is_active
				AND ml.latitude  BETWEEN $3::float8 - $5 AND $3::float8 + $5
				AND ml.longitude BETWEEN $4::float8 - $5 AND $4::float8 + $5
			)
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM player_quest_progress pqp
			WHERE pqp.quest_id = q.id AND pqp.player_id = $1
			  AND pqp.status = 'COMPLETED' AND NOT q.is_repeatable
		  )
		ORDER BY q.created_at`

	quests := make([]*models.Quest, 0)
	if err := pgxscan.Select(ctx, r.db, &quests, query, playerID, playerLevel, lat, lon, radius); err != nil {
		r.logger.Error("Failed to list available quests", zap.Error(err), zap.String("playerID", playerID.String()))
		return nil, fmt.Errorf("failed to list available quests: %w", err)
	}
	return quests, nil
}
