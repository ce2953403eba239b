package models

import (
	"time"

	"github.com/google/uuid"
)

// MagicalLocation - точка интереса на карте. Деактивация скрывает точку из
// выдачи и таргетинга квестов, но сохраняет историю отчетов и открытий.
type MagicalLocation struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	Name                string     `json:"name" db:"name"`
	Description         string     `json:"description" db:"description"`
	Latitude            float64    `json:"latitude" db:"latitude"`
	Longitude           float64    `json:"longitude" db:"longitude"`
	POIType             POIType    `json:"poi_type" db:"poi_type"`
	RealWorldIdentifier *string    `json:"real_world_identifier,omitempty" db:"real_world_identifier"`
	DiscoveredBy        *uuid.UUID `json:"discovered_by,omitempty" db:"discovered_by"`
	IsActive            bool       `json:"is_active" db:"is_active"`
	VerificationScore   int        `json:"verification_score" db:"verification_score"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// MapReport - пользовательский отчет о состоянии карты. Репортер, timestamp и
// начальный статус назначаются системой и не принимаются из payload.
type MapReport struct {
	ID                uuid.UUID    `json:"id" db:"id"`
	ReporterID        uuid.UUID    `json:"reporter_id" db:"reporter_id"`
	Latitude          float64      `json:"latitude" db:"latitude"`
	Longitude         float64      `json:"longitude" db:"longitude"`
	ReportType        ReportType   `json:"report_type" db:"report_type"`
	Description       string       `json:"description" db:"description"`
	PhotoURL          *string      `json:"photo_url,omitempty" db:"photo_url"`
	RelatedPOIID      *uuid.UUID   `json:"related_poi_id,omitempty" db:"related_poi_id"`
	Status            ReportStatus `json:"status" db:"status"`
	AIConfidenceScore *float64     `json:"ai_confidence_score,omitempty" db:"ai_confidence_score"`
	AdminNotes        *string      `json:"admin_notes,omitempty" db:"admin_notes"`
	ResolverID        *uuid.UUID   `json:"resolver_id,omitempty" db:"resolver_id"`
	ResolvedAt        *time.Time   `json:"resolved_at,omitempty" db:"resolved_at"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
}

// ReportVerification is a peer attestation: one row per (report, verifier).
type ReportVerification struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ReportID   uuid.UUID `json:"report_id" db:"report_id"`
	VerifierID uuid.UUID `json:"verifier_id" db:"verifier_id"`
	Agrees     bool      `json:"agrees_with_report" db:"agrees_with_report"`
	Comment    *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// VerificationTally - счетчики согласий/несогласий по отчету для модерации.
type VerificationTally struct {
	ReportID  uuid.UUID `json:"report_id"`
	Agrees    int       `json:"agrees"`
	Disagrees int       `json:"disagrees"`
}

// ReportSubmission carries the caller-settable fields of a new map report.
type ReportSubmission struct {
	Latitude     float64
	Longitude    float64
	ReportType   ReportType
	Description  string
	PhotoURL     *string
	RelatedPOIID *uuid.UUID
}
