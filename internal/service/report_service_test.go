package service_test

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"marauder-server/internal/messaging"
	messagingMocks "marauder-server/internal/messaging/mocks"
	"marauder-server/internal/models"
	repoMocks "marauder-server/internal/repository/mocks"
	"marauder-server/internal/service"
	serviceMocks "marauder-server/internal/service/mocks"
)

type reportServiceFixture struct {
	reports   *repoMocks.ReportRepository
	locations *repoMocks.LocationRepository
	profiles  *serviceMocks.ProfileService
	publisher *messagingMocks.ReportEventPublisher
	svc       service.ReportService
}

func newReportServiceFixture() *reportServiceFixture {
	f := &reportServiceFixture{
		reports:   new(repoMocks.ReportRepository),
		locations: new(repoMocks.LocationRepository),
		profiles:  new(serviceMocks.ProfileService),
		publisher: new(messagingMocks.ReportEventPublisher),
	}
	f.svc = service.NewReportService(f.reports, f.locations, f.profiles, f.publisher, zap.NewNop())
	return f
}

func TestReportSubmit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()
	profile := &models.PlayerProfile{ID: playerID, UserID: userID}

	t.Run("Unknown report type is rejected", func(t *testing.T) {
		f := newReportServiceFixture()
		_, err := f.svc.Submit(ctx, userID, models.ReportSubmission{
			ReportType: "GRAFFITI", Latitude: 51.5, Longitude: -0.08,
		})
		assert.ErrorIs(t, err, models.ErrInvalidReportType)
	})

	t.Run("Out of range coordinates are rejected", func(t *testing.T) {
		f := newReportServiceFixture()
		_, err := f.svc.Submit(ctx, userID, models.ReportSubmission{
			ReportType: models.ReportTypeObstruction, Latitude: 120, Longitude: 0,
		})
		assert.ErrorIs(t, err, models.ErrInvalidCoordinates)
	})

	t.Run("Submission persists then notifies the scoring queue", func(t *testing.T) {
		f := newReportServiceFixture()
		sub := models.ReportSubmission{
			ReportType:  models.ReportTypeObstruction,
			Latitude:    51.5,
			Longitude:   -0.08,
			Description: "Fallen tree across the footpath",
		}
		created := &models.MapReport{
			ID:          uuid.New(),
			ReporterID:  playerID,
			ReportType:  sub.ReportType,
			Latitude:    sub.Latitude,
			Longitude:   sub.Longitude,
			Description: sub.Description,
			Status:      models.ReportStatusSubmitted,
			CreatedAt:   time.Now(),
		}

		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.reports.On("Create", ctx, playerID, sub).Return(created, nil).Once()
		f.publisher.On("PublishReportSubmitted", ctx, mock.MatchedBy(func(p messaging.ReportSubmittedPayload) bool {
			return p.ReportID == created.ID && p.ReporterID == playerID
		})).Return(nil).Once()

		got, err := f.svc.Submit(ctx, userID, sub)
		assert.NoError(t, err)
		assert.Equal(t, models.ReportStatusSubmitted, got.Status)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Publish failure does not fail the submission", func(t *testing.T) {
		f := newReportServiceFixture()
		sub := models.ReportSubmission{
			ReportType: models.ReportTypeNewPath, Latitude: 51.5, Longitude: -0.08,
		}
		created := &models.MapReport{ID: uuid.New(), ReporterID: playerID, Status: models.ReportStatusSubmitted}

		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.reports.On("Create", ctx, playerID, sub).Return(created, nil).Once()
		f.publisher.On("PublishReportSubmitted", ctx, mock.Anything).Return(models.ErrInternalServer).Once()

		got, err := f.svc.Submit(ctx, userID, sub)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestReportVerify(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	playerID := uuid.New()
	reportID := uuid.New()
	profile := &models.PlayerProfile{ID: playerID, UserID: userID}

	t.Run("Reporter cannot verify own report", func(t *testing.T) {
		f := newReportServiceFixture()
		own := &models.MapReport{ID: reportID, ReporterID: playerID}

		f.reports.On("GetByID", ctx, reportID).Return(own, nil).Once()
		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()

		_, err := f.svc.Verify(ctx, userID, reportID, true, nil)
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("Duplicate verification surfaces the conflict", func(t *testing.T) {
		f := newReportServiceFixture()
		report := &models.MapReport{ID: reportID, ReporterID: uuid.New()}

		f.reports.On("GetByID", ctx, reportID).Return(report, nil).Once()
		f.profiles.On("GetOrCreateProfile", ctx, userID).Return(profile, nil).Once()
		f.reports.On("AddVerification", ctx, reportID, playerID, true, (*string)(nil)).
			Return(nil, models.ErrDuplicateVerification).Once()

		_, err := f.svc.Verify(ctx, userID, reportID, true, nil)
		assert.ErrorIs(t, err, models.ErrDuplicateVerification)
	})
}

func TestReportResolve(t *testing.T) {
	ctx := context.Background()
	resolverUserID := uuid.New()
	resolverID := uuid.New()
	reportID := uuid.New()
	resolver := &models.PlayerProfile{ID: resolverID, UserID: resolverUserID}

	t.Run("Non-terminal status is rejected", func(t *testing.T) {
		f := newReportServiceFixture()
		_, err := f.svc.Resolve(ctx, reportID, resolverUserID, models.ReportStatusSubmitted, nil)
		assert.ErrorIs(t, err, models.ErrInvalidStatus)
	})

	t.Run("Verified POI suggestion materializes a location", func(t *testing.T) {
		f := newReportServiceFixture()
		reporterID := uuid.New()
		resolved := &models.MapReport{
			ID:          reportID,
			ReporterID:  reporterID,
			ReportType:  models.ReportTypeNewPOISuggestion,
			Latitude:    51.51,
			Longitude:   -0.09,
			Description: "Hidden courtyard with a singing gargoyle",
			Status:      models.ReportStatusVerified,
		}

		f.profiles.On("GetOrCreateProfile", ctx, resolverUserID).Return(resolver, nil).Once()
		f.reports.On("Resolve", ctx, reportID, resolverID, models.ReportStatusVerified, (*string)(nil)).
			Return(resolved, nil).Once()
		f.reports.On("Tally", ctx, reportID).
			Return(&models.VerificationTally{ReportID: reportID, Agrees: 4, Disagrees: 1}, nil).Once()
		f.locations.On("Create", ctx, mock.MatchedBy(func(loc *models.MagicalLocation) bool {
			return loc.POIType == models.POITypePlayerSuggested &&
				loc.Latitude == resolved.Latitude &&
				loc.DiscoveredBy != nil && *loc.DiscoveredBy == reporterID &&
				loc.VerificationScore == 3
		})).Return(&models.MagicalLocation{ID: uuid.New()}, nil).Once()

		got, err := f.svc.Resolve(ctx, reportID, resolverUserID, models.ReportStatusVerified, nil)
		assert.NoError(t, err)
		assert.Equal(t, models.ReportStatusVerified, got.Status)
		f.locations.AssertExpectations(t)
	})

	t.Run("Long multibyte description is truncated on a rune boundary", func(t *testing.T) {
		f := newReportServiceFixture()
		resolved := &models.MapReport{
			ID:          reportID,
			ReporterID:  uuid.New(),
			ReportType:  models.ReportTypeNewPOISuggestion,
			Latitude:    55.75,
			Longitude:   37.61,
			Description: strings.Repeat("ё", 100),
			Status:      models.ReportStatusVerified,
		}

		f.profiles.On("GetOrCreateProfile", ctx, resolverUserID).Return(resolver, nil).Once()
		f.reports.On("Resolve", ctx, reportID, resolverID, models.ReportStatusVerified, (*string)(nil)).
			Return(resolved, nil).Once()
		f.reports.On("Tally", ctx, reportID).
			Return(&models.VerificationTally{ReportID: reportID}, nil).Once()
		f.locations.On("Create", ctx, mock.MatchedBy(func(loc *models.MagicalLocation) bool {
			return utf8.ValidString(loc.Name) && utf8.RuneCountInString(loc.Name) == 80
		})).Return(&models.MagicalLocation{ID: uuid.New()}, nil).Once()

		_, err := f.svc.Resolve(ctx, reportID, resolverUserID, models.ReportStatusVerified, nil)
		assert.NoError(t, err)
		f.locations.AssertExpectations(t)
	})

	t.Run("Verified report against an existing POI bumps its score", func(t *testing.T) {
		f := newReportServiceFixture()
		poiID := uuid.New()
		resolved := &models.MapReport{
			ID:           reportID,
			ReporterID:   uuid.New(),
			ReportType:   models.ReportTypePOIInaccuracy,
			RelatedPOIID: &poiID,
			Status:       models.ReportStatusVerified,
		}

		f.profiles.On("GetOrCreateProfile", ctx, resolverUserID).Return(resolver, nil).Once()
		f.reports.On("Resolve", ctx, reportID, resolverID, models.ReportStatusVerified, (*string)(nil)).
			Return(resolved, nil).Once()
		f.reports.On("Tally", ctx, reportID).
			Return(&models.VerificationTally{ReportID: reportID}, nil).Once()
		f.locations.On("AdjustVerificationScore", ctx, poiID, 1).Return(nil).Once()

		_, err := f.svc.Resolve(ctx, reportID, resolverUserID, models.ReportStatusVerified, nil)
		assert.NoError(t, err)
		f.locations.AssertExpectations(t)
	})

	t.Run("Rejected report against an existing POI lowers its score", func(t *testing.T) {
		f := newReportServiceFixture()
		poiID := uuid.New()
		resolved := &models.MapReport{
			ID:           reportID,
			ReporterID:   uuid.New(),
			ReportType:   models.ReportTypePOIInaccuracy,
			RelatedPOIID: &poiID,
			Status:       models.ReportStatusRejected,
		}

		f.profiles.On("GetOrCreateProfile", ctx, resolverUserID).Return(resolver, nil).Once()
		f.reports.On("Resolve", ctx, reportID, resolverID, models.ReportStatusRejected, (*string)(nil)).
			Return(resolved, nil).Once()
		f.locations.On("AdjustVerificationScore", ctx, poiID, -1).Return(nil).Once()

		_, err := f.svc.Resolve(ctx, reportID, resolverUserID, models.ReportStatusRejected, nil)
		assert.NoError(t, err)
		f.locations.AssertExpectations(t)
	})
}
