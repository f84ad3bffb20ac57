package models

import "time"

// Interaction is an actor's like/pass decision on a recipient.
// One row per ordered (actor, recipient) pair; re-deciding overwrites.
type Interaction struct {
	ActorID     string    `gorm:"primaryKey;type:uuid;index:idx_actor_recipient_liked,priority:1"`
	RecipientID string    `gorm:"primaryKey;type:uuid;index:idx_recipient_liked,priority:1;index:idx_actor_recipient_liked,priority:2"`
	Liked       bool      `gorm:"not null;index:idx_recipient_liked,priority:2;index:idx_actor_recipient_liked,priority:3"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Match records a confirmed mutual like between two members.
// UserAID < UserBID lexicographically so the pair is stored once.
type Match struct {
	BaseModel
	UserAID string `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair,priority:1"`
	UserBID string `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair,priority:2"`
}

// Block hides two members from each other. Directional: the blocker decides.
type Block struct {
	BaseModel
	BlockerID string `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair,priority:1"`
	BlockedID string `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair,priority:2"`
}

// Report is a moderation complaint filed against another member.
type Report struct {
	BaseModel
	ReporterID string       `gorm:"type:uuid;not null;index"`
	ReportedID string       `gorm:"type:uuid;not null;index"`
	Reason     string       `gorm:"size:64;not null"`
	Details    string
	Status     ReportStatus `gorm:"type:varchar(20);default:'pending';index"`
	ResolvedBy string
	ResolvedAt *time.Time
}
