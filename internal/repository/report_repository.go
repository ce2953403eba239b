package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"marauder-server/internal/models"
)

// ReportRepository manages map reports and their peer verifications.
type ReportRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.MapReport, error)
	Create(ctx context.Context, reporterID uuid.UUID, sub models.ReportSubmission) (*models.MapReport, error)
	ListByStatus(ctx context.Context, status models.ReportStatus, limit, offset int) ([]*models.MapReport, error)
	ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*models.MapReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReportStatus) (*models.MapReport, error)
	SetConfidenceScore(ctx context.Context, id uuid.UUID, score float64) error
	Resolve(ctx context.Context, id, resolverID uuid.UUID, status models.ReportStatus, adminNotes *string) (*models.MapReport, error)
	AddVerification(ctx context.Context, reportID, verifierID uuid.UUID, agrees bool, comment *string) (*models.ReportVerification, error)
	Tally(ctx context.Context, reportID uuid.UUID) (*models.VerificationTally, error)
}

var _ ReportRepository = (*pgReportRepository)(nil)

type pgReportRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgReportRepository creates a new PostgreSQL-backed ReportRepository.
func NewPgReportRepository(db DBTX, logger *zap.Logger) ReportRepository {
	return &pgReportRepository{
		db:     db,
		logger: logger.Named("PgReportRepo"),
	}
}

const reportColumns = `id, reporter_id, latitude, longitude, report_type, description, photo_url,
	related_poi_id, status, ai_confidence_score, admin_notes, resolver_id, resolved_at, created_at`

func (r *pgReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MapReport, error) {
	query := `SELECT ` + reportColumns + ` FROM map_reports WHERE id = $1`
	report := &models.MapReport{}
	if err := pgxscan.Get(ctx, r.db, report, query, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrReportNotFound
		}
		r.logger.Error("Failed to get map report", zap.Error(err), zap.String("reportID", id.String()))
		return nil, fmt.Errorf("failed to get map report: %w", err)
	}
	return report, nil
}

// Create inserts a new report. Репортер, статус и timestamp назначаются здесь,
// payload их не контролирует.
func (r *pgReportRepository) Create(ctx context.Context, reporterID uuid.UUID, sub models.ReportSubmission) (*models.MapReport, error) {
	query := `INSERT INTO map_reports
			(reporter_id, latitude, longitude, report_type, description, photo_url, related_poi_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'SUBMITTED')
		RETURNING ` + reportColumns
	report := &models.MapReport{}
	err := pgxscan.Get(ctx, r.db, report, query,
		reporterID, sub.Latitude, sub.Longitude, sub.ReportType, sub.Description, sub.PhotoURL, sub.RelatedPOIID)
	if err != nil {
		r.logger.Error("Failed to create map report", zap.Error(err), zap.String("reporterID", reporterID.String()))
		return nil, fmt.Errorf("failed to create map report: %w", err)
	}
	r.logger.Info("Map report created",
		zap.String("reportID", report.ID.String()),
		zap.String("reportType", string(report.ReportType)))
	return report, nil
}

func (r *pgReportRepository) ListByStatus(ctx context.Context, status models.ReportStatus, limit, offset int) ([]*models.MapReport, error) {
	query := `SELECT ` + reportColumns + ` FROM map_reports
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	reports := make([]*models.MapReport, 0)
	if err := pgxscan.Select(ctx, r.db, &reports, query, status, limit, offset); err != nil {
		r.logger.Error("Failed to list map reports", zap.Error(err), zap.String("status", string(status)))
		return nil, fmt.Errorf("failed to list map reports: %w", err)
	}
	return reports, nil
}

func (r *pgReportRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*models.MapReport, error) {
	query := `SELECT ` + reportColumns + ` FROM map_reports WHERE reporter_id = $1 ORDER BY created_at DESC`
	reports := make([]*models.MapReport, 0)
	if err := pgxscan.Select(ctx, r.db, &reports, query, reporterID); err != nil {
		return nil, fmt.Errorf("failed to list reports by reporter: %w", err)
	}
	return reports, nil
}

func (r *pgReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReportStatus) (*models.MapReport, error) {
	query := `UPDATE map_reports SET status = $2 WHERE id = $1 RETURNING ` + reportColumns
	report := &models.MapReport{}
	if err := pgxscan.Get(ctx, r.db, report, query, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to update report status: %w", err)
	}
	return report, nil
}

func (r *pgReportRepository) SetConfidenceScore(ctx context.Context, id uuid.UUID, score float64) error {
	query := `UPDATE map_reports SET ai_confidence_score = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, score)
	if err != nil {
		return fmt.Errorf("failed to set confidence score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrReportNotFound
	}
	return nil
}

// Resolve stamps the terminal decision. Guard в WHERE не дает перезаписать
// уже решенный отчет.
func (r *pgReportRepository) Resolve(ctx context.Context, id, resolverID uuid.UUID, status models.ReportStatus, adminNotes *string) (*models.MapReport, error) {
	query := `UPDATE map_reports SET
			status = $3, resolver_id = $2, admin_notes = COALESCE($4, admin_notes), resolved_at = now()
		WHERE id = $1 AND resolved_at IS NULL
		RETURNING ` + reportColumns
	report := &models.MapReport{}
	if err := pgxscan.Get(ctx, r.db, report, query, id, resolverID, status, adminNotes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Либо отчета нет, либо он уже решен
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, models.ErrReportAlreadyResolved
		}
		return nil, fmt.Errorf("failed to resolve map report: %w", err)
	}
	r.logger.Info("Map report resolved",
		zap.String("reportID", id.String()),
		zap.String("status", string(status)),
		zap.String("resolverID", resolverID.String()))
	return report, nil
}

// AddVerification records a peer attestation. One row per (report, verifier).
func (r *pgReportRepository) AddVerification(ctx context.Context, reportID, verifierID uuid.UUID, agrees bool, comment *string) (*models.ReportVerification, error) {
	query := `INSERT INTO report_verifications (report_id, verifier_id, agrees_with_report, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, report_id, verifier_id, agrees_with_report, comment, created_at`
	v := &models.ReportVerification{}
	err := r.db.QueryRow(ctx, query, reportID, verifierID, agrees, comment).
		Scan(&v.ID, &v.ReportID, &v.VerifierID, &v.Agrees, &v.Comment, &v.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			r.logger.Warn("Duplicate report verification",
				zap.String("reportID", reportID.String()), zap.String("verifierID", verifierID.String()))
			return nil, models.ErrDuplicateVerification
		}
		r.logger.Error("Failed to add report verification", zap.Error(err), zap.String("reportID", reportID.String()))
		return nil, fmt.Errorf("failed to add report verification: %w", err)
	}
	return v, nil
}

func (r *pgReportRepository) Tally(ctx context.Context, reportID uuid.UUID) (*models.VerificationTally, error) {
	query := `SELECT
			COUNT(*) FILTER (WHERE agrees_with_report),
			COUNT(*) FILTER (WHERE NOT agrees_with_report)
		FROM report_verifications WHERE report_id = $1`
	t := &models.VerificationTally{ReportID: reportID}
	if err := r.db.QueryRow(ctx, query, reportID).Scan(&t.Agrees, &t.Disagrees); err != nil {
		return nil, fmt.Errorf("failed to tally report verifications: %w", err)
	}
	return t, nil
}
