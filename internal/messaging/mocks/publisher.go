package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"marauder-server/internal/messaging"
)

// Mock ReportEventPublisher
type ReportEventPublisher struct {
	mock.Mock
}

func (m *ReportEventPublisher) PublishReportSubmitted(ctx context.Context, payload messaging.ReportSubmittedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
