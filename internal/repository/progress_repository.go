package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"marauder-server/internal/models"
)

// ProgressRepository manages per-player quest progress rows.
type ProgressRepository interface {
	Get(ctx context.Context, playerID, questID uuid.UUID) (*models.QuestProgress, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.QuestProgress, error)
	Create(ctx context.Context, playerID, questID uuid.UUID, status models.QuestStatus) (*models.QuestProgress, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuestStatus) (*models.QuestProgress, error)
	MarkCompletedTx(ctx context.Context, tx DBTX, id uuid.UUID) (*models.QuestProgress, error)
	ListByStatus(ctx context.Context, playerID uuid.UUID, statuses []models.QuestStatus) ([]*models.QuestProgress, error)
	CountByStatus(ctx context.Context, playerID uuid.UUID, statuses []models.QuestStatus) (int, error)
}

var _ ProgressRepository = (*pgProgressRepository)(nil)

type pgProgressRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgProgressRepository creates a new PostgreSQL-backed ProgressRepository.
func NewPgProgressRepository(db DBTX, logger *zap.Logger) ProgressRepository {
	return &pgProgressRepository{
		db:     db,
		logger: logger.Named("PgProgressRepo"),
	}
}

const progressColumns = `id, player_id, quest_id, status, started_at, completed_at`

func scanProgress(row pgx.Row) (*models.QuestProgress, error) {
	p := &models.QuestProgress{}
	err := row.Scan(&p.ID, &p.PlayerID, &p.QuestID, &p.Status, &p.StartedAt, &p.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to scan quest progress: %w", err)
	}
	return p, nil
}

func (r *pgProgressRepository) Get(ctx context.Context, playerID, questID uuid.UUID) (*models.QuestProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM player_quest_progress WHERE player_id = $1 AND quest_id = $2`
	return scanProgress(r.db.QueryRow(ctx, query, playerID, questID))
}

func (r *pgProgressRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.QuestProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM player_quest_progress WHERE id = $1`
	return scanProgress(r.db.QueryRow(ctx, query, id))
}

// Create inserts a new progress row. Пара (player, quest) уникальна:
// повторный accept возвращает ErrQuestAlreadyTaken.
func (r *pgProgressRepository) Create(ctx context.Context, playerID, questID uuid.UUID, status models.QuestStatus) (*models.QuestProgress, error) {
	query := `INSERT INTO player_quest_progress (player_id, quest_id, status, started_at)
		VALUES ($1, $2, $3, now())
		RETURNING ` + progressColumns
	p, err := scanProgress(r.db.QueryRow(ctx, query, playerID, questID, status))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			r.logger.Warn("Attempted to accept an already taken quest",
				zap.String("playerID", playerID.String()), zap.String("questID", questID.String()))
			return nil, models.ErrQuestAlreadyTaken
		}
		r.logger.Error("Failed to create quest progress", zap.Error(err),
			zap.String("playerID", playerID.String()), zap.String("questID", questID.String()))
		return nil, err
	}
	return p, nil
}

// UpdateStatus меняет статус и попутно проставляет таймстемпы переходов:
// started_at при входе в ACCEPTED/IN_PROGRESS, completed_at при входе в FAILED.
func (r *pgProgressRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuestStatus) (*models.QuestProgress, error) {
	query := `UPDATE player_quest_progress SET
			status = $2,
			started_at = CASE
				WHEN $2 IN ('ACCEPTED', 'IN_PROGRESS') AND started_at IS NULL THEN now()
				ELSE started_at END,
			completed_at = CASE
				WHEN $2 = 'FAILED' THEN now()
				ELSE completed_at END
		WHERE id = $1
		RETURNING ` + progressColumns
	return scanProgress(r.db.QueryRow(ctx, query, id, status))
}

// MarkCompletedTx stamps the terminal COMPLETED state inside the reward
// transaction. Предикат по статусу сериализует гонку двух complete: под
// read committed оба могли прочитать незавершенный статус, но UPDATE
// пройдет только у одного, второй получает ErrQuestAlreadyCompleted.
func (r *pgProgressRepository) MarkCompletedTx(ctx context.Context, tx DBTX, id uuid.UUID) (*models.QuestProgress, error) {
	query := `UPDATE player_quest_progress SET status = 'COMPLETED', completed_at = now()
		WHERE id = $1 AND status <> 'COMPLETED'
		RETURNING ` + progressColumns
	p, err := scanProgress(tx.QueryRow(ctx, query, id))
	if errors.Is(err, models.ErrProgressNotFound) {
		return nil, models.ErrQuestAlreadyCompleted
	}
	return p, err
}

func (r *pgProgressRepository) ListByStatus(ctx context.Context, playerID uuid.UUID, statuses []models.QuestStatus) ([]*models.QuestProgress, error) {
	query := `SELECT pqp.id, pqp.player_id, pqp.quest_id, pqp.status, pqp.started_at, pqp.completed_at,
			q.id, q.title, q.description, q.xp_reward, q.item_reward_id, q.min_player_level,
			q.target_location_id, q.is_repeatable, q.is_active, q.created_at
		FROM player_quest_progress pqp
		JOIN quests q ON q.id = pqp.quest_id
		WHERE pqp.player_id = $1 AND pqp.status = ANY($2)
		ORDER BY pqp.started_at DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, playerID, statusStrings(statuses))
	if err != nil {
		r.logger.Error("Failed to list quest progress", zap.Error(err), zap.String("playerID", playerID.String()))
		return nil, fmt.Errorf("failed to list quest progress: %w", err)
	}
	defer rows.Close()

	result := make([]*models.QuestProgress, 0)
	for rows.Next() {
		p := &models.QuestProgress{Quest: &models.Quest{}}
		q := p.Quest
		if err := rows.Scan(&p.ID, &p.PlayerID, &p.QuestID, &p.Status, &p.StartedAt, &p.CompletedAt,
			&q.ID, &q.Title, &q.Description, &q.XPReward, &q.ItemRewardID, &q.MinPlayerLevel,
			&q.TargetLocationID, &q.IsRepeatable, &q.IsActive, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quest progress row: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *pgProgressRepository) CountByStatus(ctx context.Context, playerID uuid.UUID, statuses []models.QuestStatus) (int, error) {
	query := `SELECT COUNT(*) FROM player_quest_progress WHERE player_id = $1 AND status = ANY($2)`
	var count int
	if err := r.db.QueryRow(ctx, query, playerID, statusStrings(statuses)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quest progress: %w", err)
	}
	return count, nil
}

func statusStrings(statuses []models.QuestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
