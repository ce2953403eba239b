package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"marauder-server/internal/models"
)

// ProfileRepository manages player profiles and their wand assignments.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PlayerProfile, error)
	Create(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.PlayerProfile, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.PlayerProfile, error)
	TouchLastSeen(ctx context.Context, id uuid.UUID) error
	AddExperienceTx(ctx context.Context, tx DBTX, id uuid.UUID, xp int) (*models.PlayerProfile, error)
	GetAssignedWand(ctx context.Context, playerID uuid.UUID) (*models.Wand, error)
}

var _ ProfileRepository = (*pgProfileRepository)(nil)

type pgProfileRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgProfileRepository creates a new PostgreSQL-backed ProfileRepository.
func NewPgProfileRepository(db DBTX, logger *zap.Logger) ProfileRepository {
	return &pgProfileRepository{
		db:     db,
		logger: logger.Named("PgProfileRepo"),
	}
}

const profileColumns = `id, user_id, display_name, house, level, experience, avatar_url,
	current_latitude, current_longitude, last_seen, created_at, updated_at`

func (r *pgProfileRepository) scanProfile(row pgx.Row) (*models.PlayerProfile, error) {
	p := &models.PlayerProfile{}
	err := row.Scan(&p.ID, &p.UserID, &p.DisplayName, &p.House, &p.Level, &p.Experience,
		&p.AvatarURL, &p.Latitude, &p.Longitude, &p.LastSeen, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to scan player profile: %w", err)
	}
	return p, nil
}

func (r *pgProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM player_profiles WHERE user_id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *pgProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PlayerProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM player_profiles WHERE id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, id))
}

// Create inserts an empty profile for the given account. On a concurrent
// insert the existing row is returned, so the call is idempotent.
func (r *pgProfileRepository) Create(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error) {
	query := `INSERT INTO player_profiles (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + profileColumns
	p, err := r.scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		r.logger.Error("Failed to create player profile", zap.Error(err), zap.String("userID", userID.String()))
		return nil, err
	}
	r.logger.Info("Player profile created", zap.String("profileID", p.ID.String()), zap.String("userID", userID.String()))
	return p, nil
}

// UpdateProfile применяет только переданные (не nil) поля.
func (r *pgProfileRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.PlayerProfile, error) {
	query := `UPDATE player_profiles SET
			display_name = COALESCE($2, display_name),
			house = COALESCE($3, house),
			avatar_url = COALESCE($4, avatar_url),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + profileColumns
	return r.scanProfile(r.db.QueryRow(ctx, query, id, upd.DisplayName, upd.House, upd.AvatarURL))
}

// UpdatePosition stores the new last-known position and refreshes last_seen.
func (r *pgProfileRepository) UpdatePosition(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.PlayerProfile, error) {
	query := `UPDATE player_profiles SET
			current_latitude = $2, current_longitude = $3, last_seen = now(), updated_at = now()
		WHERE id = $1
		RETURNING ` + profileColumns
	return r.scanProfile(r.db.QueryRow(ctx, query, id, lat, lon))
}

// TouchLastSeen refreshes last_seen without rewriting the rest of the row.
func (r *pgProfileRepository) TouchLastSeen(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE player_profiles SET last_seen = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to touch last_seen: %w", err)
	}
	return nil
}

// AddExperienceTx credits experience and recomputes the level in one statement.
// Уровень всегда выводится из опыта, поэтому пересчет делается в SQL.
func (r *pgProfileRepository) AddExperienceTx(ctx context.Context, tx DBTX, id uuid.UUID, xp int) (*models.PlayerProfile, error) {
	query := `UPDATE player_profiles SET
			experience = experience + $2,
			level = ((experience + $2) / $3) + 1,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + profileColumns
	return r.scanProfile(tx.QueryRow(ctx, query, id, xp, models.ExperiencePerLevel))
}

// GetAssignedWand returns the player's wand, the earliest assignment winning
// when several are present.
func (r *pgProfileRepository) GetAssignedWand(ctx context.Context, playerID uuid.UUID) (*models.Wand, error) {
	query := `SELECT w.id, w.core, w.wood_type, w.length_inches, w.flexibility
		FROM wands w
		JOIN wand_assignments wa ON wa.wand_id = w.id
		WHERE wa.player_id = $1
		ORDER BY wa.assigned_at ASC
		LIMIT 1`
	wand := &models.Wand{}
	err := r.db.QueryRow(ctx, query, playerID).Scan(&wand.ID, &wand.Core, &wand.WoodType, &wand.LengthInches, &wand.Flexibility)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrWandNotFound
		}
		r.logger.Error("Failed to get assigned wand", zap.Error(err), zap.String("playerID", playerID.String()))
		return nil, fmt.Errorf("failed to get assigned wand: %w", err)
	}
	return wand, nil
}
