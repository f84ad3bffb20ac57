package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "new_match", "new_like", "referral_reward", ...
	Title   string `gorm:"not null"`
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"match_id": "...", "user_id": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
