package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"marauder-server/internal/models"
	"marauder-server/internal/service"
)

// Mock ProfileService
type ProfileService struct {
	mock.Mock
}

func (m *ProfileService) GetOrCreateProfile(ctx context.Context, userID uuid.UUID) (*models.PlayerProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.PlayerProfile, error) {
	args := m.Called(ctx, userID, upd)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileService) UpdatePosition(ctx context.Context, userID uuid.UUID, lat, lon float64) (*models.PlayerProfile, error) {
	args := m.Called(ctx, userID, lat, lon)
	p, _ := args.Get(0).(*models.PlayerProfile)
	return p, args.Error(1)
}
func (m *ProfileService) GetAssignedWand(ctx context.Context, playerID uuid.UUID) (*models.Wand, error) {
	args := m.Called(ctx, playerID)
	w, _ := args.Get(0).(*models.Wand)
	return w, args.Error(1)
}
func (m *ProfileService) ListTraces(ctx context.Context, userID uuid.UUID, limit int) ([]*models.GPSTrace, error) {
	args := m.Called(ctx, userID, limit)
	traces, _ := args.Get(0).([]*models.GPSTrace)
	return traces, args.Error(1)
}
func (m *ProfileService) InvalidateCache(ctx context.Context, userID uuid.UUID) {
	m.Called(ctx, userID)
}

// Mock InventoryService
type InventoryService struct {
	mock.Mock
}

func (m *InventoryService) ListCatalog(ctx context.Context) ([]*models.GameItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*models.GameItem)
	return items, args.Error(1)
}
func (m *InventoryService) GetItem(ctx context.Context, itemID uuid.UUID) (*models.GameItem, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*models.GameItem)
	return item, args.Error(1)
}
func (m *InventoryService) ListInventory(ctx context.Context, userID uuid.UUID) ([]*models.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	entries, _ := args.Get(0).([]*models.InventoryEntry)
	return entries, args.Error(1)
}
func (m *InventoryService) GrantItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	e, _ := args.Get(0).(*models.InventoryEntry)
	return e, args.Error(1)
}
func (m *InventoryService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.InventoryEntry, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	e, _ := args.Get(0).(*models.InventoryEntry)
	return e, args.Error(1)
}

// Mock QuestService
type QuestService struct {
	mock.Mock
}

func (m *QuestService) ListAvailable(ctx context.Context, userID uuid.UUID) ([]*models.Quest, error) {
	args := m.Called(ctx, userID)
	quests, _ := args.Get(0).([]*models.Quest)
	return quests, args.Error(1)
}
func (m *QuestService) ListActive(ctx context.Context, userID uuid.UUID) ([]*models.QuestProgress, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*models.QuestProgress)
	return list, args.Error(1)
}
func (m *QuestService) ListCompleted(ctx context.Context, userID uuid.UUID) ([]*models.QuestProgress, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*models.QuestProgress)
	return list, args.Error(1)
}
func (m *QuestService) Accept(ctx context.Context, userID, questID uuid.UUID) (*models.QuestProgress, error) {
	args := m.Called(ctx, userID, questID)
	p, _ := args.Get(0).(*models.QuestProgress)
	return p, args.Error(1)
}
func (m *QuestService) Advance(ctx context.Context, userID, progressID uuid.UUID, target models.QuestStatus) (*models.QuestProgress, error) {
	args := m.Called(ctx, userID, progressID, target)
	p, _ := args.Get(0).(*models.QuestProgress)
	return p, args.Error(1)
}
func (m *QuestService) Complete(ctx context.Context, userID, progressID uuid.UUID) (*models.CompletionReward, error) {
	args := m.Called(ctx, userID, progressID)
	r, _ := args.Get(0).(*models.CompletionReward)
	return r, args.Error(1)
}

// Mock ReportService
type ReportService struct {
	mock.Mock
}

func (m *ReportService) Submit(ctx context.Context, userID uuid.UUID, sub models.ReportSubmission) (*models.MapReport, error) {
	args := m.Called(ctx, userID, sub)
	r, _ := args.Get(0).(*models.MapReport)
	return r, args.Error(1)
}
func (m *ReportService) GetReport(ctx context.Context, reportID uuid.UUID) (*models.MapReport, error) {
	args := m.Called(ctx, reportID)
	r, _ := args.Get(0).(*models.MapReport)
	return r, args.Error(1)
}
func (m *ReportService) ListMine(ctx context.Context, userID uuid.UUID) ([]*models.MapReport, error) {
	args := m.Called(ctx, userID)
	reports, _ := args.Get(0).([]*models.MapReport)
	return reports, args.Error(1)
}
func (m *ReportService) ListByStatus(ctx context.Context, status models.ReportStatus, limit, offset int) ([]*models.MapReport, error) {
	args := m.Called(ctx, status, limit, offset)
	reports, _ := args.Get(0).([]*models.MapReport)
	return reports, args.Error(1)
}
func (m *ReportService) Verify(ctx context.Context, userID, reportID uuid.UUID, agrees bool, comment *string) (*models.ReportVerification, error) {
	args := m.Called(ctx, userID, reportID, agrees, comment)
	v, _ := args.Get(0).(*models.ReportVerification)
	return v, args.Error(1)
}
func (m *ReportService) Tally(ctx context.Context, reportID uuid.UUID) (*models.VerificationTally, error) {
	args := m.Called(ctx, reportID)
	t, _ := args.Get(0).(*models.VerificationTally)
	return t, args.Error(1)
}
func (m *ReportService) SetConfidenceScore(ctx context.Context, reportID uuid.UUID, score float64) error {
	args := m.Called(ctx, reportID, score)
	return args.Error(0)
}
func (m *ReportService) Resolve(ctx context.Context, reportID, resolverUserID uuid.UUID, status models.ReportStatus, adminNotes *string) (*models.MapReport, error) {
	args := m.Called(ctx, reportID, resolverUserID, status, adminNotes)
	r, _ := args.Get(0).(*models.MapReport)
	return r, args.Error(1)
}

// Mock LocationService
type LocationService struct {
	mock.Mock
}

func (m *LocationService) Get(ctx context.Context, id uuid.UUID) (*models.MagicalLocation, error) {
	args := m.Called(ctx, id)
	loc, _ := args.Get(0).(*models.MagicalLocation)
	return loc, args.Error(1)
}
func (m *LocationService) ListNearby(ctx context.Context, lat, lon float64) ([]*models.MagicalLocation, error) {
	args := m.Called(ctx, lat, lon)
	locs, _ := args.Get(0).([]*models.MagicalLocation)
	return locs, args.Error(1)
}
func (m *LocationService) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock DashboardService
type DashboardService struct {
	mock.Mock
}

func (m *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*service.Dashboard, error) {
	args := m.Called(ctx, userID)
	d, _ := args.Get(0).(*service.Dashboard)
	return d, args.Error(1)
}
