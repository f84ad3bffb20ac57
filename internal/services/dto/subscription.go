package dto

import (
	"encoding/json"
	"time"

	"rishta_backend/internal/models"
)

// PlanDTO - one purchasable premium plan.
type PlanDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Currency string          `json:"currency"`
	Duration string          `json:"duration"`
	Features map[string]bool `json:"features,omitempty"`
}

// NewPlanDTO maps a plan model to its transport shape.
func NewPlanDTO(p *models.SubscriptionPlan) PlanDTO {
	var features map[string]bool
	if len(p.Features) > 0 {
		_ = json.Unmarshal(p.Features, &features)
	}
	return PlanDTO{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Currency: p.Currency,
		Duration: p.Duration,
		Features: features,
	}
}

// SubscribeRequest - start a subscription on a plan.
type SubscribeRequest struct {
	PlanID    string `json:"plan_id" validate:"required,uuid"`
	AutoRenew bool   `json:"auto_renew"`
}

// SubscriptionDTO - the caller's subscription state.
type SubscriptionDTO struct {
	ID          string                    `json:"id"`
	PlanID      string                    `json:"plan_id,omitempty"`
	PlanName    string                    `json:"plan_name,omitempty"`
	Status      models.SubscriptionStatus `json:"status"`
	StartDate   time.Time                 `json:"start_date"`
	EndDate     time.Time                 `json:"end_date"`
	AutoRenew   bool                      `json:"auto_renew"`
	CancelledAt *time.Time                `json:"cancelled_at,omitempty"`
}

// NewSubscriptionDTO maps a subscription model to its transport shape.
func NewSubscriptionDTO(s *models.UserSubscription) SubscriptionDTO {
	d := SubscriptionDTO{
		ID:          s.ID,
		PlanID:      s.PlanID,
		Status:      s.Status,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		AutoRenew:   s.AutoRenew,
		CancelledAt: s.CancelledAt,
	}
	if s.Plan != nil {
		d.PlanName = s.Plan.Name
	}
	return d
}
