package dto

import "rishta_backend/internal/algorithms"

// WeightsResponse - the current scoring weights.
type WeightsResponse struct {
	Weights algorithms.WeightConfig `json:"weights"`
}

// UpdateWeightsRequest - admin payload replacing the scoring weights.
// Weights must be non-negative; they need not sum to 100.
type UpdateWeightsRequest struct {
	MarriageIntent float64 `json:"marriage_intent" validate:"gte=0"`
	CultureFaith   float64 `json:"culture_faith" validate:"gte=0"`
	Values         float64 `json:"values" validate:"gte=0"`
	Location       float64 `json:"location" validate:"gte=0"`
	Language       float64 `json:"language" validate:"gte=0"`
	ProfileQuality float64 `json:"profile_quality" validate:"gte=0"`
}

// ToWeights converts the request to the scorer's configuration type.
func (r UpdateWeightsRequest) ToWeights() algorithms.WeightConfig {
	return algorithms.WeightConfig{
		MarriageIntent: r.MarriageIntent,
		CultureFaith:   r.CultureFaith,
		Values:         r.Values,
		Location:       r.Location,
		Language:       r.Language,
		ProfileQuality: r.ProfileQuality,
	}
}
