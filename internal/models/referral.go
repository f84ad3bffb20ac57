package models

import "time"

// Referral tracks a referred signup through its reward lifecycle:
// pending (signed up) -> completed (referee profile approved) ->
// rewarded (premium days granted to both sides), or cancelled.
type Referral struct {
	BaseModel
	ReferrerID string         `gorm:"type:uuid;not null;index"`
	RefereeID  string         `gorm:"type:uuid;not null;uniqueIndex"`
	Code       string         `gorm:"size:12;not null;index"`
	Status     ReferralStatus `gorm:"type:varchar(20);default:'pending';index"`
	RewardDays int            `gorm:"not null"`
	RewardedAt *time.Time
}
