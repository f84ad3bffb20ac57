package dto

import "rishta_backend/internal/algorithms"

// DiscoverRequest - query parameters of the discovery search.
// Premium-only filters are accepted from any caller and silently ignored
// for free accounts.
type DiscoverRequest struct {
	AgeMin      int    `form:"age_min" validate:"omitempty,gte=18,lte=100"`
	AgeMax      int    `form:"age_max" validate:"omitempty,gte=18,lte=100"`
	SearchQuery string `form:"q" validate:"omitempty,max=128"`

	City          string `form:"city"`
	Faith         string `form:"faith"`
	MaritalStatus string `form:"marital_status" validate:"omitempty,is-marital-status"`
	Smoking       string `form:"smoking" validate:"omitempty,is-habit-frequency"`
	Drinking      string `form:"drinking" validate:"omitempty,is-habit-frequency"`
	HasChildren   string `form:"has_children" validate:"omitempty,oneof=true false"`

	VerifiedOnly   bool    `form:"verified_only"`
	MinPhotos      int     `form:"min_photos" validate:"omitempty,gte=0,lte=9"`
	RecentlyActive bool    `form:"recently_active"`
	MaxDistanceKm  float64 `form:"max_distance_km" validate:"omitempty,gte=0"`

	Page     int `form:"page" validate:"omitempty,gte=1"`
	PageSize int `form:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// ToCriteria converts the request to the pipeline's filter form.
func (r DiscoverRequest) ToCriteria() algorithms.FilterCriteria {
	return algorithms.FilterCriteria{
		AgeMin:         r.AgeMin,
		AgeMax:         r.AgeMax,
		SearchQuery:    r.SearchQuery,
		City:           r.City,
		Faith:          r.Faith,
		MaritalStatus:  r.MaritalStatus,
		Smoking:        r.Smoking,
		Drinking:       r.Drinking,
		HasChildren:    r.HasChildren,
		VerifiedOnly:   r.VerifiedOnly,
		MinPhotos:      r.MinPhotos,
		RecentlyActive: r.RecentlyActive,
		MaxDistanceKm:  r.MaxDistanceKm,
	}
}

// DiscoveryResultDTO - one ranked candidate.
type DiscoveryResultDTO struct {
	Profile    ProfileDTO         `json:"profile"`
	Score      int                `json:"score"`
	Label      string             `json:"label"`
	Breakdown  map[string]float64 `json:"breakdown"`
	DistanceKm *float64           `json:"distance_km,omitempty"`
}

// DiscoverResponse - one page of ranked candidates.
type DiscoverResponse struct {
	Results  []DiscoveryResultDTO `json:"results"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// CompatibilityResponse - the score between the viewer and one candidate.
type CompatibilityResponse struct {
	UserID    string             `json:"user_id"`
	Score     int                `json:"score"`
	Label     string             `json:"label"`
	Breakdown map[string]float64 `json:"breakdown"`
}
