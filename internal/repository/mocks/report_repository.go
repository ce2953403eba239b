package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
)

// Mock ReportRepository
type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MapReport, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*models.MapReport)
	return r, args.Error(1)
}
func (m *ReportRepository) Create(ctx context.Context, reporterID uuid.UUID, sub models.ReportSubmission) (*models.MapReport, error) {
	args := m.Called(ctx, reporterID, sub)
	r, _ := args.Get(0).(*models.MapReport)
	return r, args.Error(1)
}
func (m *ReportRepository) ListByStatus(ctx context.Context, status models.ReportStatus, limit, offset int) ([]*models.MapReport, error) {
	args := m.Called(ctx, status, limit, offset)
	reports, _ := args.Get(0).([]*models.MapReport)
	return reports, args.Error(1)
}
func (m *ReportRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*models.MapReport, error) {
	args := m.Called(ctx, reporterID)
	reports, _ := args.Get(0).([]*models.MapReport)
	return reports, args.Error(1)
}
func (m *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReportStatus) (*models.MapReport, error) {
	args := m.Called(ctx, id, status)
	r, _ := args.Get(0).(*models.MapReport)
	return r, args.Error(1)
}
func (m *ReportRepository) SetConfidenceScore(ctx context.Context, id uuid.UUID, score float64) error {
	args := m.Called(ctx, id, score)
	return args.Error(0)
}
func (m *ReportRepository) Resolve(ctx context.Context, id, resolverID uuid.UUID, status models.ReportStatus, adminNotes *string) (*models.MapReport, error) {
	args := m.Called(ctx, id, resolverID, status, adminNotes)
	r, _ := args.Get(0).(*models.MapReport)
	return r, args.Error(1)
}
func (m *ReportRepository) AddVerification(ctx context.Context, reportID, verifierID uuid.UUID, agrees bool, comment *string) (*models.ReportVerification, error) {
	args := m.Called(ctx, reportID, verifierID, agrees, comment)
	v, _ := args.Get(0).(*models.ReportVerification)
	return v, args.Error(1)
}
func (m *ReportRepository) Tally(ctx context.Context, reportID uuid.UUID) (*models.VerificationTally, error) {
	args := m.Called(ctx, reportID)
	t, _ := args.Get(0).(*models.VerificationTally)
	return t, args.Error(1)
}
