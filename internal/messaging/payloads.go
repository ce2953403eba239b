package messaging

import (
	"time"

	"github.com/google/uuid"

	"marauder-server/internal/models"
)

// ReportSubmittedPayload уходит внешнему скорингу после приема нового отчета.
type ReportSubmittedPayload struct {
	ReportID    uuid.UUID         `json:"report_id"`
	ReporterID  uuid.UUID         `json:"reporter_id"`
	ReportType  models.ReportType `json:"report_type"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Description string            `json:"description"`
	PhotoURL    *string           `json:"photo_url,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// ReportScorePayload приходит от скоринга с оценкой достоверности отчета.
type ReportScorePayload struct {
	ReportID        uuid.UUID `json:"report_id"`
	ConfidenceScore float64   `json:"confidence_score"`
}
