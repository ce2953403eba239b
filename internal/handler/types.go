package handler

import (
	"github.com/google/uuid"

	"marauder-server/internal/models"
)

// UpdateProfileRequest carries the caller-editable profile fields.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	House       *string `json:"house,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// UpdatePositionRequest is a single GPS fix from the client.
// Указатели, потому что нулевые координаты валидны.
type UpdatePositionRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

// GrantItemRequest adds items to the caller's inventory.
type GrantItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

// RemoveItemRequest removes items from the caller's inventory.
type RemoveItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

// AdvanceQuestRequest moves a progress record to IN_PROGRESS or FAILED.
type AdvanceQuestRequest struct {
	Status models.QuestStatus `json:"status" binding:"required"`
}

// SubmitReportRequest is a new crowd-sourced map report.
// Репортер, статус и timestamp назначаются сервером.
type SubmitReportRequest struct {
	Latitude     float64    `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64    `json:"longitude" binding:"min=-180,max=180"`
	ReportType   string     `json:"report_type" binding:"required"`
	Description  string     `json:"description" binding:"required,max=2000"`
	PhotoURL     *string    `json:"photo_url,omitempty"`
	RelatedPOIID *uuid.UUID `json:"related_poi_id,omitempty"`
}

// VerifyReportRequest is a peer attestation of an existing report.
type VerifyReportRequest struct {
	Agrees  *bool   `json:"agrees_with_report" binding:"required"`
	Comment *string `json:"comment,omitempty"`
}

// SetConfidenceRequest приходит от внешнего скоринга (служебный эндпоинт).
type SetConfidenceRequest struct {
	ConfidenceScore float64 `json:"confidence_score" binding:"min=0,max=1"`
}

// ResolveReportRequest stamps the moderation decision (internal endpoint).
type ResolveReportRequest struct {
	Status     models.ReportStatus `json:"status" binding:"required"`
	ResolverID uuid.UUID           `json:"resolver_id" binding:"required"`
	AdminNotes *string             `json:"admin_notes,omitempty"`
}

// NearbyQuery bounds a map viewport query to a point.
type NearbyQuery struct {
	Latitude  *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"lon" binding:"required,min=-180,max=180"`
}
