package algorithms

import (
	"math"

	"rishta_backend/internal/models"
)

// Breakdown category names.
const (
	CategoryMarriageIntent = "marriage_intent"
	CategoryCulture        = "culture"
	CategoryFaith          = "faith"
	CategoryValues         = "values"
	CategoryLocation       = "location"
	CategoryLanguage       = "language"
	CategoryProfileQuality = "profile_quality"
)

// WeightConfig maps scoring categories to point contributions. Weights do not
// have to sum to 100; each is an independent contribution and the aggregate
// is clamped to [0,100].
type WeightConfig struct {
	MarriageIntent float64 `json:"marriage_intent"`
	CultureFaith   float64 `json:"culture_faith"`
	Values         float64 `json:"values"`
	Location       float64 `json:"location"`
	Language       float64 `json:"language"`
	ProfileQuality float64 `json:"profile_quality"`
}

// DefaultWeights is the platform default until an admin tunes it.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		MarriageIntent: 30,
		CultureFaith:   25,
		Values:         25,
		Location:       10,
		Language:       10,
		ProfileQuality: 10,
	}
}

// MatchScore is the scorer output: an integer total in [0,100] plus the
// per-category points that produced it. Breakdown entries are rounded
// independently of the total, so their literal sum may differ from Total
// by up to one point. Callers display, not re-sum, the breakdown.
type MatchScore struct {
	Total     int                `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
	Label     string             `json:"label"`
}

// Score computes how compatible a candidate is with the viewer (0-100).
// Total function: missing fields contribute zero to their category, never
// an error. Not symmetric — values and location contributions depend on
// which side is the viewer.
func Score(viewer, candidate *models.Profile, w WeightConfig) MatchScore {
	total := 0.0
	breakdown := make(map[string]float64)

	add := func(category string, points float64) {
		if points <= 0 {
			return
		}
		total += points
		breakdown[category] += math.Round(points)
	}

	// Marriage intent: full weight on an exact goal match, half weight when
	// both sides state a goal but they differ.
	if viewer.RelationshipGoal != "" && candidate.RelationshipGoal != "" {
		if viewer.RelationshipGoal == candidate.RelationshipGoal {
			add(CategoryMarriageIntent, w.MarriageIntent)
		} else {
			add(CategoryMarriageIntent, w.MarriageIntent/2)
		}
	}

	// Culture and faith split a shared weight 60/40.
	if intersects(viewer.GetCultures(), candidate.GetCultures()) {
		add(CategoryCulture, 0.6*w.CultureFaith)
	}
	if viewer.ReligiousAffiliation != "" && viewer.ReligiousAffiliation == candidate.ReligiousAffiliation {
		add(CategoryFaith, 0.4*w.CultureFaith)
	}

	// Values scale with how much of the viewer's list the candidate covers.
	if viewerValues := viewer.GetCoreValues(); len(viewerValues) > 0 {
		overlap := intersectCount(viewerValues, candidate.GetCoreValues())
		add(CategoryValues, w.Values*float64(overlap)/float64(len(viewerValues)))
	}

	// Location: city match wins outright, country is the fallback.
	if viewer.City != "" && viewer.City == candidate.City {
		add(CategoryLocation, w.Location)
	} else if viewer.Country != "" && viewer.Country == candidate.Country {
		add(CategoryLocation, 0.5*w.Location)
	}

	if intersects(viewer.GetLanguages(), candidate.GetLanguages()) {
		add(CategoryLanguage, w.Language)
	}

	if candidate.IsVerified {
		add(CategoryProfileQuality, w.ProfileQuality)
	}

	rounded := int(math.Round(total))
	if rounded > 100 {
		rounded = 100
	}

	return MatchScore{
		Total:     rounded,
		Breakdown: breakdown,
		Label:     MatchLabel(rounded),
	}
}

// MatchLabel maps a total score onto its qualitative band.
// Band lower bounds are inclusive.
func MatchLabel(total int) string {
	switch {
	case total >= 90:
		return "Excellent Match"
	case total >= 75:
		return "Strong Match"
	case total >= 60:
		return "Good Match"
	default:
		return "Potential Match"
	}
}

func intersects(a, b []string) bool {
	return intersectCount(a, b) > 0
}

func intersectCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	count := 0
	for _, v := range b {
		if set[v] {
			count++
			set[v] = false
		}
	}
	return count
}
