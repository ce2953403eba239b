package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marauder-server/internal/messaging"
	"marauder-server/internal/models"
	"marauder-server/internal/repository"
)

// ReportService handles crowd-sourced map reports, peer verification and
// moderation decisions.
type ReportService interface {
	// Submit persists the report and notifies the scoring pipeline.
	Submit(ctx context.Context, userID uuid.UUID, sub models.ReportSubmission) (*models.MapReport, error)
	GetReport(ctx context.Context, reportID uuid.UUID) (*models.MapReport, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*models.MapReport, error)
	ListByStatus(ctx context.Context, status models.ReportStatus, limit, offset int) ([]*models.MapReport, error)
	// Verify records one peer attestation per (report, verifier).
	// Статус отчета при этом не меняется.
	Verify(ctx context.Context, userID, reportID uuid.UUID, agrees bool, comment *string) (*models.ReportVerification, error)
	Tally(ctx context.Context, reportID uuid.UUID) (*models.VerificationTally, error)
	// SetConfidenceScore применяет оценку внешнего скоринга.
	SetConfidenceScore(ctx context.Context, reportID uuid.UUID, score float64) error
	// Resolve stamps the moderation decision. A VERIFIED NEW_POI_SUGGESTION
	// materializes a new magical location.
	Resolve(ctx context.Context, reportID, resolverUserID uuid.UUID, status models.ReportStatus, adminNotes *string) (*models.MapReport, error)
}

var _ ReportService = (*reportServiceImpl)(nil)

type reportServiceImpl struct {
	reports   repository.ReportRepository
	locations repository.LocationRepository
	profiles  ProfileService
	publisher messaging.ReportEventPublisher
	logger    *zap.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(
	reports repository.ReportRepository,
	locations repository.LocationRepository,
	profiles ProfileService,
	publisher messaging.ReportEventPublisher,
	logger *zap.Logger,
) ReportService {
	return &reportServiceImpl{
		reports:   reports,
		locations: locations,
		profiles:  profiles,
		publisher: publisher,
		logger:    logger.Named("ReportService"),
	}
}

func (s *reportServiceImpl) Submit(ctx context.Context, userID uuid.UUID, sub models.ReportSubmission) (*models.MapReport, error) {
	if !sub.ReportType.IsValid() {
		return nil, models.ErrInvalidReportType
	}
	if !ValidCoordinates(sub.Latitude, sub.Longitude) {
		return nil, models.ErrInvalidCoordinates
	}
	if sub.RelatedPOIID != nil {
		if _, err := s.locations.GetByID(ctx, *sub.RelatedPOIID); err != nil {
			return nil, err
		}
	}

	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	report, err := s.reports.Create(ctx, profile.ID, sub)
	if err != nil {
		return nil, err
	}

	// Отчет уже сохранен: сбой публикации не откатывает прием,
	// скоринг догонит отчет позже
	if s.publisher != nil {
		payload := messaging.ReportSubmittedPayload{
			ReportID:    report.ID,
			ReporterID:  report.ReporterID,
			ReportType:  report.ReportType,
			Latitude:    report.Latitude,
			Longitude:   report.Longitude,
			Description: report.Description,
			PhotoURL:    report.PhotoURL,
			SubmittedAt: report.CreatedAt,
		}
		if err := s.publisher.PublishReportSubmitted(ctx, payload); err != nil {
			s.logger.Error("Failed to publish report submitted event",
				zap.Error(err), zap.String("reportID", report.ID.String()))
		}
	}

	return report, nil
}

func (s *reportServiceImpl) GetReport(ctx context.Context, reportID uuid.UUID) (*models.MapReport, error) {
	return s.reports.GetByID(ctx, reportID)
}

func (s *reportServiceImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*models.MapReport, error) {
	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.reports.ListByReporter(ctx, profile.ID)
}

func (s *reportServiceImpl) ListByStatus(ctx context.Context, status models.ReportStatus, limit, offset int) ([]*models.MapReport, error) {
	if !status.IsValid() {
		return nil, models.ErrInvalidStatus
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.reports.ListByStatus(ctx, status, limit, offset)
}

func (s *reportServiceImpl) Verify(ctx context.Context, userID, reportID uuid.UUID, agrees bool, comment *string) (*models.ReportVerification, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if report.ReporterID == profile.ID {
		// Автор не подтверждает собственный отчет
		return nil, models.ErrForbidden
	}

	return s.reports.AddVerification(ctx, reportID, profile.ID, agrees, comment)
}

func (s *reportServiceImpl) Tally(ctx context.Context, reportID uuid.UUID) (*models.VerificationTally, error) {
	if _, err := s.reports.GetByID(ctx, reportID); err != nil {
		return nil, err
	}
	return s.reports.Tally(ctx, reportID)
}

func (s *reportServiceImpl) SetConfidenceScore(ctx context.Context, reportID uuid.UUID, score float64) error {
	return s.reports.SetConfidenceScore(ctx, reportID, score)
}

func (s *reportServiceImpl) Resolve(ctx context.Context, reportID, resolverUserID uuid.UUID, status models.ReportStatus, adminNotes *string) (*models.MapReport, error) {
	switch status {
	case models.ReportStatusVerified, models.ReportStatusRejected, models.ReportStatusNeedsMoreInfo:
	default:
		return nil, models.ErrInvalidStatus
	}

	resolver, err := s.profiles.GetOrCreateProfile(ctx, resolverUserID)
	if err != nil {
		return nil, err
	}

	report, err := s.reports.Resolve(ctx, reportID, resolver.ID, status, adminNotes)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.ReportStatusVerified:
		s.applyVerifiedEffects(ctx, report)
	case models.ReportStatusRejected:
		s.adjustRelatedScore(ctx, report, -1)
	}
	return report, nil
}

// applyVerifiedEffects материализует последствия подтвержденного отчета:
// новая точка из NEW_POI_SUGGESTION, сдвиг verification_score связанной точки.
func (s *reportServiceImpl) applyVerifiedEffects(ctx context.Context, report *models.MapReport) {
	tally, err := s.reports.Tally(ctx, report.ID)
	if err != nil {
		s.logger.Warn("Failed to tally verified report", zap.Error(err), zap.String("reportID", report.ID.String()))
		tally = &models.VerificationTally{ReportID: report.ID}
	}

	if report.ReportType == models.ReportTypeNewPOISuggestion {
		// Имя режем по рунам, чтобы не порвать многобайтовый символ
		name := report.Description
		if runes := []rune(name); len(runes) > 80 {
			name = string(runes[:80])
		}
		loc := &models.MagicalLocation{
			Name:              name,
			Description:       report.Description,
			Latitude:          report.Latitude,
			Longitude:         report.Longitude,
			POIType:           models.POITypePlayerSuggested,
			DiscoveredBy:      &report.ReporterID,
			VerificationScore: tally.Agrees - tally.Disagrees,
		}
		if created, err := s.locations.Create(ctx, loc); err != nil {
			s.logger.Error("Failed to materialize suggested location",
				zap.Error(err), zap.String("reportID", report.ID.String()))
		} else {
			s.logger.Info("Suggested location materialized",
				zap.String("reportID", report.ID.String()),
				zap.String("locationID", created.ID.String()))
		}
		return
	}

	s.adjustRelatedScore(ctx, report, 1)
}

// adjustRelatedScore сдвигает verification_score связанной точки, если она есть.
func (s *reportServiceImpl) adjustRelatedScore(ctx context.Context, report *models.MapReport, delta int) {
	if report.RelatedPOIID == nil {
		return
	}
	if err := s.locations.AdjustVerificationScore(ctx, *report.RelatedPOIID, delta); err != nil {
		if !errors.Is(err, models.ErrLocationNotFound) {
			s.logger.Warn("Failed to adjust location verification score",
				zap.Error(err), zap.String("locationID", report.RelatedPOIID.String()))
		}
	}
}
