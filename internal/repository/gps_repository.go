package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"marauder-server/internal/models"
)

// GPSTraceRepository хранит историю перемещений игрока (append-only).
type GPSTraceRepository interface {
	Append(ctx context.Context, playerID uuid.UUID, lat, lon float64) error
	ListRecent(ctx context.Context, playerID uuid.UUID, limit int) ([]*models.GPSTrace, error)
}

var _ GPSTraceRepository = (*pgGPSTraceRepository)(nil)

type pgGPSTraceRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgGPSTraceRepository creates a new PostgreSQL-backed GPSTraceRepository.
func NewPgGPSTraceRepository(db DBTX, logger *zap.Logger) GPSTraceRepository {
	return &pgGPSTraceRepository{
		db:     db,
		logger: logger.Named("PgGPSTraceRepo"),
	}
}

func (r *pgGPSTraceRepository) Append(ctx context.Context, playerID uuid.UUID, lat, lon float64) error {
	query := `INSERT INTO player_gps_traces (player_id, latitude, longitude) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, playerID, lat, lon); err != nil {
		r.logger.Error("Failed to append gps trace", zap.Error(err), zap.String("playerID", playerID.String()))
		return fmt.Errorf("failed to append gps trace: %w", err)
	}
	return nil
}

func (r *pgGPSTraceRepository) ListRecent(ctx context.Context, playerID uuid.UUID, limit int) ([]*models.GPSTrace, error) {
	query := `SELECT id, player_id, latitude, longitude, recorded_at
		FROM player_gps_traces
		WHERE player_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2`
	traces := make([]*models.GPSTrace, 0)
	if err := pgxscan.Select(ctx, r.db, &traces, query, playerID, limit); err != nil {
		return nil, fmt.Errorf("failed to list gps traces: %w", err)
	}
	return traces, nil
}
