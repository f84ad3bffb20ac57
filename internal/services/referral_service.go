package services

import (
	"context"
	"time"

	"rishta_backend/internal/config"
	"rishta_backend/internal/events"
	"rishta_backend/internal/logger"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type ReferralService interface {
	// Redeem binds a fresh signup to the owner of the code. Called during
	// registration, before the referee's profile exists in any real sense.
	Redeem(code, refereeID string) error

	// CompleteForUser moves the referee's referral from pending to
	// completed. Triggered when their profile is approved.
	CompleteForUser(refereeID string) error

	// RewardCompleted grants premium days for completed referrals and
	// marks them rewarded. Run by the referral worker.
	RewardCompleted(limit int) (int, error)

	// CancelForUser voids a pending or completed referral, e.g. when the
	// referee is banned before the reward fires.
	CancelForUser(refereeID string) error

	Summary(userID string) (*dto.ReferralSummaryResponse, error)
}

type ReferralServiceImpl struct {
	referralRepo    repositories.ReferralRepository
	userRepo        repositories.UserRepository
	subscriptionSvc SubscriptionService
	notificationSvc NotificationService
	emailProvider   EmailProviderRef
	bus             *events.Bus
	cfg             *config.Config
}

// EmailProviderRef is the slice of the email provider this service needs.
type EmailProviderRef interface {
	SendReferralReward(to, name string, rewardDays int) error
}

func NewReferralService(
	referralRepo repositories.ReferralRepository,
	userRepo repositories.UserRepository,
	subscriptionSvc SubscriptionService,
	notificationSvc NotificationService,
	emailProvider EmailProviderRef,
	bus *events.Bus,
	cfg *config.Config,
) ReferralService {
	return &ReferralServiceImpl{
		referralRepo:    referralRepo,
		userRepo:        userRepo,
		subscriptionSvc: subscriptionSvc,
		notificationSvc: notificationSvc,
		emailProvider:   emailProvider,
		bus:             bus,
		cfg:             cfg,
	}
}

func (s *ReferralServiceImpl) Redeem(code, refereeID string) error {
	referrer, err := s.userRepo.FindByReferralCode(code)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidReferralCode
		}
		return apperrors.InternalError(err)
	}
	if referrer.ID == refereeID {
		return apperrors.ErrSelfReferral
	}

	if _, err := s.referralRepo.FindByRefereeID(refereeID); err == nil {
		return apperrors.ErrReferralAlreadyRedeemed
	} else if !apperrors.Is(err, repositories.ErrReferralNotFound) {
		return apperrors.InternalError(err)
	}

	referral := &models.Referral{
		ReferrerID: referrer.ID,
		RefereeID:  refereeID,
		Code:       code,
		Status:     models.ReferralStatusPending,
		RewardDays: s.cfg.Referral.RewardDays,
	}
	if err := s.referralRepo.Create(referral); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ReferralServiceImpl) CompleteForUser(refereeID string) error {
	referral, err := s.referralRepo.FindByRefereeID(refereeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReferralNotFound) {
			return nil // not referred, nothing to do
		}
		return apperrors.InternalError(err)
	}
	if referral.Status != models.ReferralStatusPending {
		return nil
	}
	return s.referralRepo.UpdateStatus(referral.ID, models.ReferralStatusCompleted)
}

func (s *ReferralServiceImpl) RewardCompleted(limit int) (int, error) {
	referrals, err := s.referralRepo.FindCompleted(limit)
	if err != nil {
		return 0, err
	}

	rewarded := 0
	now := time.Now()
	for _, referral := range referrals {
		if err := s.rewardOne(&referral, now); err != nil {
			logger.WithError(err).Error("failed to reward referral", "referral_id", referral.ID)
			continue
		}
		rewarded++
	}
	return rewarded, nil
}

// rewardOne grants premium days to both sides and notifies the referrer.
func (s *ReferralServiceImpl) rewardOne(referral *models.Referral, now time.Time) error {
	if err := s.subscriptionSvc.GrantPremiumDays(referral.ReferrerID, referral.RewardDays, now); err != nil {
		return err
	}
	if err := s.subscriptionSvc.GrantPremiumDays(referral.RefereeID, referral.RewardDays, now); err != nil {
		return err
	}
	if err := s.referralRepo.MarkRewarded(referral.ID, now); err != nil {
		return err
	}

	s.notificationSvc.Notify(referral.ReferrerID, "referral_reward", "Referral reward",
		"A friend you invited was approved. Premium days have been added to your account.",
		map[string]string{"referral_id": referral.ID})

	if referrer, err := s.userRepo.FindByID(referral.ReferrerID); err == nil {
		name := ""
		if referrer.Profile != nil {
			name = referrer.Profile.DisplayName
		}
		if err := s.emailProvider.SendReferralReward(referrer.Email, name, referral.RewardDays); err != nil {
			logger.WithError(err).Warn("failed to send referral reward email", "user_id", referrer.ID)
		}
	}

	s.bus.Publish(context.Background(), events.Event{
		Type:    events.ReferralRewarded,
		Payload: map[string]string{"referral_id": referral.ID, "referrer_id": referral.ReferrerID},
	})
	return nil
}

func (s *ReferralServiceImpl) CancelForUser(refereeID string) error {
	referral, err := s.referralRepo.FindByRefereeID(refereeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReferralNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	if referral.Status == models.ReferralStatusRewarded {
		return nil // the grant already happened, leave it
	}
	return s.referralRepo.UpdateStatus(referral.ID, models.ReferralStatusCancelled)
}

func (s *ReferralServiceImpl) Summary(userID string) (*dto.ReferralSummaryResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	referrals, err := s.referralRepo.ListByReferrer(userID, 50, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rewarded, err := s.referralRepo.CountByReferrerAndStatus(userID, models.ReferralStatusRewarded)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.referralRepo.CountByReferrerAndStatus(userID, models.ReferralStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ReferralSummaryResponse{
		Code:      user.ReferralCode,
		Rewarded:  rewarded,
		Pending:   pending,
		Referrals: make([]dto.ReferralDTO, 0, len(referrals)),
	}
	for i := range referrals {
		resp.Referrals = append(resp.Referrals, dto.NewReferralDTO(&referrals[i]))
	}
	return resp, nil
}
