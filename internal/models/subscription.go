package models

import (
	"time"

	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	BaseModel
	Name     string         `gorm:"not null"`
	Price    float64        `gorm:"not null"`
	Currency string         `gorm:"default:'GBP'"`
	Duration string         `gorm:"not null"`   // "monthly", "yearly"
	Features datatypes.JSON `gorm:"type:jsonb"` // {"advanced_filters": true, ...}
	IsActive bool           `gorm:"default:true"`
}

type UserSubscription struct {
	BaseModel
	UserID      string             `gorm:"not null;index"`
	PlanID      string             `gorm:"index"` // empty for referral-reward grants
	Status      SubscriptionStatus `gorm:"type:varchar(20);default:'active';index"`
	StartDate   time.Time
	EndDate     time.Time
	AutoRenew   bool `gorm:"default:false"`
	CancelledAt *time.Time

	// Relations
	Plan *SubscriptionPlan `gorm:"foreignKey:PlanID"`
}

// IsCurrent reports whether the subscription grants premium at the given time.
func (s *UserSubscription) IsCurrent(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && !now.After(s.EndDate)
}
