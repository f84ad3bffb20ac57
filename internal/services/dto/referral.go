package dto

import (
	"time"

	"rishta_backend/internal/models"
)

// ReferralDTO - one referred signup as shown to the referrer.
type ReferralDTO struct {
	ID         string                `json:"id"`
	Status     models.ReferralStatus `json:"status"`
	RewardDays int                   `json:"reward_days"`
	RewardedAt *time.Time            `json:"rewarded_at,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

// NewReferralDTO maps a referral model to its transport shape.
func NewReferralDTO(r *models.Referral) ReferralDTO {
	return ReferralDTO{
		ID:         r.ID,
		Status:     r.Status,
		RewardDays: r.RewardDays,
		RewardedAt: r.RewardedAt,
		CreatedAt:  r.CreatedAt,
	}
}

// ReferralSummaryResponse - the caller's code and referral history.
type ReferralSummaryResponse struct {
	Code      string        `json:"code"`
	Rewarded  int64         `json:"rewarded"`
	Pending   int64         `json:"pending"`
	Referrals []ReferralDTO `json:"referrals"`
}
