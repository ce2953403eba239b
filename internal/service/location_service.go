package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marauder-server/internal/models"
	"marauder-server/internal/repository"
)

// LocationService exposes the magical location map.
type LocationService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.MagicalLocation, error)
	// ListNearby returns active locations inside the bounding box around the point.
	ListNearby(ctx context.Context, lat, lon float64) ([]*models.MagicalLocation, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

var _ LocationService = (*locationServiceImpl)(nil)

type locationServiceImpl struct {
	locations repository.LocationRepository
	logger    *zap.Logger
}

// NewLocationService creates a new LocationService.
func NewLocationService(locations repository.LocationRepository, logger *zap.Logger) LocationService {
	return &locationServiceImpl{
		locations: locations,
		logger:    logger.Named("LocationService"),
	}
}

func (s *locationServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.MagicalLocation, error) {
	return s.locations.GetByID(ctx, id)
}

func (s *locationServiceImpl) ListNearby(ctx context.Context, lat, lon float64) ([]*models.MagicalLocation, error) {
	if !ValidCoordinates(lat, lon) {
		return nil, models.ErrInvalidCoordinates
	}
	return s.locations.ListNearby(ctx, lat, lon, GeofenceRadiusDegrees)
}

func (s *locationServiceImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.locations.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Magical location deactivated", zap.String("locationID", id.String()))
	return nil
}
