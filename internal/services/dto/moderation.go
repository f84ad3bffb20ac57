package dto

import (
	"time"

	"rishta_backend/internal/models"
)

// BlockRequest - hide a member from the caller and vice versa.
type BlockRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// ReportRequest - file a complaint against another member.
type ReportRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Reason  string `json:"reason" validate:"required,is-report-reason"`
	Details string `json:"details,omitempty" validate:"omitempty,max=2000"`
}

// ReportDTO - a complaint in the moderation queue.
type ReportDTO struct {
	ID         string              `json:"id"`
	ReporterID string              `json:"reporter_id"`
	ReportedID string              `json:"reported_id"`
	Reason     string              `json:"reason"`
	Details    string              `json:"details,omitempty"`
	Status     models.ReportStatus `json:"status"`
	ResolvedBy string              `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time          `json:"resolved_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NewReportDTO maps a report model to its transport shape.
func NewReportDTO(r *models.Report) ReportDTO {
	return ReportDTO{
		ID:         r.ID,
		ReporterID: r.ReporterID,
		ReportedID: r.ReportedID,
		Reason:     r.Reason,
		Details:    r.Details,
		Status:     r.Status,
		ResolvedBy: r.ResolvedBy,
		ResolvedAt: r.ResolvedAt,
		CreatedAt:  r.CreatedAt,
	}
}

// ResolveReportRequest - a moderator's verdict on a report. An action may
// be applied to the reported account in the same step.
type ResolveReportRequest struct {
	Dismiss bool   `json:"dismiss"`
	Action  string `json:"action,omitempty" validate:"omitempty,oneof=suspend ban none"`
	Note    string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

// ReviewProfileRequest - approve or reject a pending profile.
type ReviewProfileRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// UpdateUserStatusRequest - suspend, ban or reinstate an account.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended banned"`
}

// BlockDTO - one entry in the caller's block list.
type BlockDTO struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
