package dto

import "time"

// DecisionRequest - a swipe on another member.
type DecisionRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Liked       bool   `json:"liked"`
}

// DecisionResponse reports whether the swipe completed a mutual like.
type DecisionResponse struct {
	Mutual  bool      `json:"mutual"`
	MatchID string    `json:"match_id,omitempty"`
	Matched *MatchDTO `json:"match,omitempty"`
}

// LikerDTO - someone who liked the caller.
type LikerDTO struct {
	UserID  string     `json:"user_id"`
	Profile ProfileDTO `json:"profile"`
	LikedAt time.Time  `json:"liked_at"`
}

// LikersResponse - page of members who liked the caller.
type LikersResponse struct {
	Likers []LikerDTO `json:"likers"`
	Total  int64      `json:"total"`
}

// LikeCountResponse - how many members like the caller.
type LikeCountResponse struct {
	Count int64 `json:"count"`
}

// MatchDTO - one confirmed mutual like, shown from the caller's side.
type MatchDTO struct {
	MatchID   string     `json:"match_id"`
	UserID    string     `json:"user_id"` // the other member
	Profile   ProfileDTO `json:"profile"`
	MatchedAt time.Time  `json:"matched_at"`
}

// MatchesResponse - the caller's matches, newest first.
type MatchesResponse struct {
	Matches []MatchDTO `json:"matches"`
}
