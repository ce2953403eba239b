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

// LocationRepository manages magical locations on the map.
type LocationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.MagicalLocation, error)
	// ListNearby returns active locations inside the bounding box around (lat, lon).
	ListNearby(ctx context.Context, lat, lon, radius float64) ([]*models.MagicalLocation, error)
	Create(ctx context.Context, loc *models.MagicalLocation) (*models.MagicalLocation, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	AdjustVerificationScore(ctx context.Context, id uuid.UUID, delta int) error
}

var _ LocationRepository = (*pgLocationRepository)(nil)

type pgLocationRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgLocationRepository creates a new PostgreSQL-backed LocationRepository.
func NewPgLocationRepository(db DBTX, logger *zap.Logger) LocationRepository {
	return &pgLocationRepository{
		db:     db,
		logger: logger.Named("PgLocationRepo"),
	}
}

const locationColumns = `id, name, description, latitude, longitude, poi_type,
	real_world_identifier, discovered_by, is_active, verification_score, created_at, updated_at`

func (r *pgLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MagicalLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM magical_locations WHERE id = $1`
	loc := &models.MagicalLocation{}
	if err := pgxscan.Get(ctx, r.db, loc, query, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrLocationNotFound
		}
		r.logger.Error("Failed to get magical location", zap.Error(err), zap.String("locationID", id.String()))
		return nil, fmt.Errorf("failed to get magical location: %w", err)
	}
	return loc, nil
}

func (r *pgLocationRepository) ListNearby(ctx context.Context, lat, lon, radius float64) ([]*models.MagicalLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM magical_locations
		WHERE is_active
		  AND latitude  BETWEEN $1 - $3 AND $1 + $3
		  AND longitude BETWEEN $2 - $3 AND $2 + $3
		ORDER BY name`
	locations := make([]*models.MagicalLocation, 0)
	if err := pgxscan.Select(ctx, r.db, &locations, query, lat, lon, radius); err != nil {
		r.logger.Error("Failed to list nearby locations", zap.Error(err))
		return nil, fmt.Errorf("failed to list nearby locations: %w", err)
	}
	return locations, nil
}

func (r *pgLocationRepository) Create(ctx context.Context, loc *models.MagicalLocation) (*models.MagicalLocation, error) {
	query := `INSERT INTO magical_locations
			(name, description, latitude, longitude, poi_type, real_world_identifier, discovered_by, verification_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + locationColumns
	created := &models.MagicalLocation{}
	err := pgxscan.Get(ctx, r.db, created, query,
		loc.Name, loc.Description, loc.Latitude, loc.Longitude, loc.POIType,
		loc.RealWorldIdentifier, loc.DiscoveredBy, loc.VerificationScore)
	if err != nil {
		r.logger.Error("Failed to create magical location", zap.Error(err), zap.String("name", loc.Name))
		return nil, fmt.Errorf("failed to create magical location: %w", err)
	}
	r.logger.Info("Magical location created", zap.String("locationID", created.ID.String()), zap.String("name", created.Name))
	return created, nil
}

func (r *pgLocationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE magical_locations SET is_active = FALSE, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate magical location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrLocationNotFound
	}
	return nil
}

func (r *pgLocationRepository) AdjustVerificationScore(ctx context.Context, id uuid.UUID, delta int) error {
	query := `UPDATE magical_locations SET verification_score = verification_score + $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust verification score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrLocationNotFound
	}
	return nil
}
