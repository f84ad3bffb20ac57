package services

import (
	"time"

	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type SubscriptionService interface {
	ListPlans() ([]dto.PlanDTO, error)
	Subscribe(userID string, req *dto.SubscribeRequest) (*dto.SubscriptionDTO, error)
	Cancel(userID string) error
	Current(userID string) (*dto.SubscriptionDTO, error)

	// IsPremium reports whether the user holds premium entitlement now.
	IsPremium(userID string, now time.Time) (bool, error)

	// GrantPremiumDays extends the current subscription or opens a
	// plan-less grant. Used for referral rewards.
	GrantPremiumDays(userID string, days int, now time.Time) error

	// ExpireOverdue is run by the subscription worker.
	ExpireOverdue(now time.Time) (int64, error)
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repositories.SubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepository) SubscriptionService {
	return &SubscriptionServiceImpl{subscriptionRepo: subscriptionRepo}
}

func (s *SubscriptionServiceImpl) ListPlans() ([]dto.PlanDTO, error) {
	plans, err := s.subscriptionRepo.ListActivePlans()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.PlanDTO, 0, len(plans))
	for i := range plans {
		out = append(out, dto.NewPlanDTO(&plans[i]))
	}
	return out, nil
}

func (s *SubscriptionServiceImpl) Subscribe(userID string, req *dto.SubscribeRequest) (*dto.SubscriptionDTO, error) {
	plan, err := s.subscriptionRepo.FindPlanByID(req.PlanID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	start := now
	// An existing entitlement pushes the new term to start when it ends.
	if current, err := s.subscriptionRepo.FindCurrentByUserID(userID, now); err == nil {
		start = current.EndDate
	}

	var end time.Time
	switch plan.Duration {
	case "yearly":
		end = start.AddDate(1, 0, 0)
	default:
		end = start.AddDate(0, 1, 0)
	}

	sub := &models.UserSubscription{
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    models.SubscriptionStatusActive,
		StartDate: start,
		EndDate:   end,
		AutoRenew: req.AutoRenew,
	}
	if err := s.subscriptionRepo.CreateSubscription(sub); err != nil {
		return nil, apperrors.InternalError(err)
	}
	sub.Plan = plan

	d := dto.NewSubscriptionDTO(sub)
	return &d, nil
}

func (s *SubscriptionServiceImpl) Cancel(userID string) error {
	sub, err := s.subscriptionRepo.FindCurrentByUserID(userID, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return apperrors.ErrNoActiveSubscription
		}
		return apperrors.InternalError(err)
	}
	if sub.CancelledAt != nil {
		return apperrors.ErrSubscriptionCancelled
	}

	// Cancellation stops renewal; the paid term runs to its end date.
	now := time.Now()
	sub.AutoRenew = false
	sub.CancelledAt = &now
	if err := s.subscriptionRepo.Update(sub); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SubscriptionServiceImpl) Current(userID string) (*dto.SubscriptionDTO, error) {
	sub, err := s.subscriptionRepo.FindCurrentByUserID(userID, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNoActiveSubscription
		}
		return nil, apperrors.InternalError(err)
	}
	d := dto.NewSubscriptionDTO(sub)
	return &d, nil
}

func (s *SubscriptionServiceImpl) IsPremium(userID string, now time.Time) (bool, error) {
	_, err := s.subscriptionRepo.FindCurrentByUserID(userID, now)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SubscriptionServiceImpl) GrantPremiumDays(userID string, days int, now time.Time) error {
	if current, err := s.subscriptionRepo.FindCurrentByUserID(userID, now); err == nil {
		current.EndDate = current.EndDate.AddDate(0, 0, days)
		return s.subscriptionRepo.Update(current)
	} else if !apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
		return err
	}

	grant := &models.UserSubscription{
		UserID:    userID,
		Status:    models.SubscriptionStatusActive,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, days),
	}
	return s.subscriptionRepo.CreateSubscription(grant)
}

func (s *SubscriptionServiceImpl) ExpireOverdue(now time.Time) (int64, error) {
	return s.subscriptionRepo.ExpireOverdue(now)
}
