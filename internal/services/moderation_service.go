package services

import (
	"context"
	"time"

	"rishta_backend/internal/events"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type ModerationService interface {
	// Member-facing
	Block(userID string, req *dto.BlockRequest) error
	Unblock(userID, blockedID string) error
	ListBlocks(userID string) ([]dto.BlockDTO, error)
	Report(userID string, req *dto.ReportRequest) error

	// Moderator-facing
	ListReports(status models.ReportStatus, limit, offset int) ([]dto.ReportDTO, error)
	ResolveReport(moderatorID, reportID string, req *dto.ResolveReportRequest) error
	ListPendingProfiles(limit, offset int) ([]dto.ProfileDTO, error)
	ReviewProfile(moderatorID, userID string, req *dto.ReviewProfileRequest) error
	VerifyProfile(userID string, verified bool) error
	SetUserStatus(moderatorID, userID string, status models.UserStatus) error
}

type ModerationServiceImpl struct {
	moderationRepo  repositories.ModerationRepository
	profileRepo     repositories.ProfileRepository
	userRepo        repositories.UserRepository
	interactionRepo repositories.InteractionRepository
	notificationSvc NotificationService
	bus             *events.Bus
}

func NewModerationService(
	moderationRepo repositories.ModerationRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	interactionRepo repositories.InteractionRepository,
	notificationSvc NotificationService,
	bus *events.Bus,
) ModerationService {
	return &ModerationServiceImpl{
		moderationRepo:  moderationRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		interactionRepo: interactionRepo,
		notificationSvc: notificationSvc,
		bus:             bus,
	}
}

// Member-facing

func (s *ModerationServiceImpl) Block(userID string, req *dto.BlockRequest) error {
	if userID == req.UserID {
		return apperrors.ErrSelfInteraction
	}
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.moderationRepo.CreateBlock(userID, req.UserID); err != nil {
		return apperrors.InternalError(err)
	}
	// A block dissolves any existing match between the pair.
	_ = s.interactionRepo.DeleteMatch(userID, req.UserID)
	return nil
}

func (s *ModerationServiceImpl) Unblock(userID, blockedID string) error {
	err := s.moderationRepo.DeleteBlock(userID, blockedID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBlockNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ModerationServiceImpl) ListBlocks(userID string) ([]dto.BlockDTO, error) {
	blocks, err := s.moderationRepo.ListBlocks(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.BlockDTO, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, dto.BlockDTO{UserID: b.BlockedID, CreatedAt: b.CreatedAt})
	}
	return out, nil
}

func (s *ModerationServiceImpl) Report(userID string, req *dto.ReportRequest) error {
	if userID == req.UserID {
		return apperrors.ErrSelfInteraction
	}
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	report := &models.Report{
		ReporterID: userID,
		ReportedID: req.UserID,
		Reason:     req.Reason,
		Details:    req.Details,
		Status:     models.ReportStatusPending,
	}
	if err := s.moderationRepo.CreateReport(report); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Moderator-facing

func (s *ModerationServiceImpl) ListReports(status models.ReportStatus, limit, offset int) ([]dto.ReportDTO, error) {
	reports, err := s.moderationRepo.ListReports(status, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.ReportDTO, 0, len(reports))
	for i := range reports {
		out = append(out, dto.NewReportDTO(&reports[i]))
	}
	return out, nil
}

func (s *ModerationServiceImpl) ResolveReport(moderatorID, reportID string, req *dto.ResolveReportRequest) error {
	report, err := s.moderationRepo.FindReportByID(reportID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReportNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if report.Status != models.ReportStatusPending {
		return apperrors.ErrReportAlreadyResolved
	}

	status := models.ReportStatusResolved
	if req.Dismiss {
		status = models.ReportStatusDismissed
	}
	if err := s.moderationRepo.ResolveReport(reportID, moderatorID, status, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}

	if req.Dismiss {
		return nil
	}
	switch req.Action {
	case "suspend":
		return s.SetUserStatus(moderatorID, report.ReportedID, models.UserStatusSuspended)
	case "ban":
		return s.SetUserStatus(moderatorID, report.ReportedID, models.UserStatusBanned)
	}
	return nil
}

func (s *ModerationServiceImpl) ListPendingProfiles(limit, offset int) ([]dto.ProfileDTO, error) {
	profiles, err := s.profileRepo.FindByStatus(models.ProfileStatusPending, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	now := time.Now()
	out := make([]dto.ProfileDTO, 0, len(profiles))
	for i := range profiles {
		out = append(out, toProfileDTO(&profiles[i], now))
	}
	return out, nil
}

// ReviewProfile approves or rejects a pending profile. Approval fires the
// profile-approved event so referral completion can react.
func (s *ModerationServiceImpl) ReviewProfile(moderatorID, userID string, req *dto.ReviewProfileRequest) error {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if profile.Status != models.ProfileStatusPending {
		return apperrors.ErrInvalidStatus("moderation", "profile is not awaiting review")
	}

	if req.Approve {
		if err := s.profileRepo.UpdateStatus(userID, models.ProfileStatusApproved); err != nil {
			return apperrors.InternalError(err)
		}
		s.notificationSvc.Notify(userID, "profile_approved", "Profile approved",
			"Your profile is live. You can now discover matches.", nil)
		s.bus.Publish(context.Background(), events.Event{
			Type:    events.ProfileApproved,
			Payload: map[string]string{"user_id": userID, "moderator_id": moderatorID},
		})
		return nil
	}

	if err := s.profileRepo.UpdateStatus(userID, models.ProfileStatusRejected); err != nil {
		return apperrors.InternalError(err)
	}
	message := "Your profile was not approved."
	if req.Reason != "" {
		message += " Reason: " + req.Reason
	}
	s.notificationSvc.Notify(userID, "profile_rejected", "Profile rejected", message, nil)
	s.bus.Publish(context.Background(), events.Event{
		Type:    events.ProfileRejected,
		Payload: map[string]string{"user_id": userID, "moderator_id": moderatorID},
	})
	return nil
}

func (s *ModerationServiceImpl) VerifyProfile(userID string, verified bool) error {
	err := s.profileRepo.SetVerified(userID, verified)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ModerationServiceImpl) SetUserStatus(moderatorID, userID string, status models.UserStatus) error {
	if moderatorID == userID {
		return apperrors.ErrCannotModifySelf
	}
	target, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if target.Role == models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.userRepo.UpdateStatus(userID, status); err != nil {
		return apperrors.InternalError(err)
	}
	// Cut open sessions when access is revoked.
	if status == models.UserStatusSuspended || status == models.UserStatusBanned {
		_ = s.userRepo.DeleteUserRefreshTokens(userID)
	}
	return nil
}
