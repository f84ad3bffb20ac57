package algorithms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"rishta_backend/internal/algorithms"
	"rishta_backend/internal/models"
)

func buildProfile(t *testing.T, mutate func(p *models.Profile)) *models.Profile {
	t.Helper()
	p := &models.Profile{
		UserID:      "user-1",
		DisplayName: "Test User",
	}
	p.SetCultures(nil)
	p.SetCoreValues(nil)
	p.SetLanguages(nil)
	p.SetPhotos(nil)
	if mutate != nil {
		mutate(p)
	}
	return p
}

// The canonical worked example: same goal, shared culture, full values
// overlap, country-level location fallback, verified candidate.
func TestScore_EndToEndScenario(t *testing.T) {
	viewer := buildProfile(t, func(p *models.Profile) {
		p.UserID = "viewer"
		p.City = "London"
		p.Country = "UK"
		p.RelationshipGoal = "Marriage"
		p.SetCultures([]string{"Pakistani"})
		p.SetCoreValues([]string{"Family", "Faith"})
	})
	candidate := buildProfile(t, func(p *models.Profile) {
		p.UserID = "candidate"
		p.City = "Manchester"
		p.Country = "UK"
		p.RelationshipGoal = "Marriage"
		p.SetCultures([]string{"Pakistani"})
		p.SetCoreValues([]string{"Family", "Faith"})
		p.IsVerified = true
	})

	score := algorithms.Score(viewer, candidate, algorithms.DefaultWeights())

	// 30 (intent) + 15 (culture) + 25 (values) + 5 (country) + 10 (verified)
	assert.Equal(t, 85, score.Total)
	assert.Equal(t, "Strong Match", score.Label)
	assert.Equal(t, 30.0, score.Breakdown[algorithms.CategoryMarriageIntent])
	assert.Equal(t, 15.0, score.Breakdown[algorithms.CategoryCulture])
	assert.Equal(t, 25.0, score.Breakdown[algorithms.CategoryValues])
	assert.Equal(t, 5.0, score.Breakdown[algorithms.CategoryLocation])
	assert.Equal(t, 10.0, score.Breakdown[algorithms.CategoryProfileQuality])
	assert.NotContains(t, score.Breakdown, algorithms.CategoryFaith)
	assert.NotContains(t, score.Breakdown, algorithms.CategoryLanguage)
}

func TestScore_EmptyProfilesScoreZero(t *testing.T) {
	viewer := buildProfile(t, nil)
	candidate := buildProfile(t, nil)

	score := algorithms.Score(viewer, candidate, algorithms.DefaultWeights())

	assert.Equal(t, 0, score.Total)
	assert.Empty(t, score.Breakdown)
	assert.Equal(t, "Potential Match", score.Label)
}

func TestScore_HalfWeightOnDifferentGoals(t *testing.T) {
	viewer := buildProfile(t, func(p *models.Profile) { p.RelationshipGoal = "Marriage" })
	candidate := buildProfile(t, func(p *models.Profile) { p.RelationshipGoal = "Friendship" })

	score := algorithms.Score(viewer, candidate, algorithms.DefaultWeights())

	assert.Equal(t, 15, score.Total)
	assert.Equal(t, 15.0, score.Breakdown[algorithms.CategoryMarriageIntent])
}

func TestScore_NoIntentPointsWhenEitherGoalMissing(t *testing.T) {
	viewer := buildProfile(t, func(p *models.Profile) { p.RelationshipGoal = "Marriage" })
	candidate := buildProfile(t, nil)

	score := algorithms.Score(viewer, candidate, algorithms.DefaultWeights())

	assert.Equal(t, 0, score.Total)
}

func TestScore_ValuesScaleWithViewerOverlap(t *testing.T) {
	viewer := buildProfile(t, func(p *models.Profile) {
		p.SetCoreValues([]string{"Family", "Faith", "Honesty", "Ambition"})
	})
	candidate := buildProfile(t, func(p *models.Profile) {
		p.SetCoreValues([]string{"Family", "Travel"})
	})

	score := algorithms.Score(viewer, candidate, algorithms.DefaultWeights())

	// 25 * 1/4 = 6.25, rounded to 6 in both total and breakdown.
	assert.Equal(t, 6, score.Total)
	assert.Equal(t, 6.0, score.Breakdown[algorithms.CategoryValues])
}

func TestScore_CityBeatsCountryFallback(t *testing.T) {
	viewer := buildProfile(t, func(p *models.Profile) {
		p.City = "London"
		p.Country = "UK"
	})
	candidate := buildProfile(t, func(p *models.Profile) {
		p.City = "London"
		p.Country = "UK"
	})

	score := algorithms.Score(viewer, candidate, algorithms.DefaultWeights())

	assert.Equal(t, 10.0, score.Breakdown[algorithms.CategoryLocation])
}

func TestScore_FaithRequiresEqualAffiliation(t *testing.T) {
	viewer := buildProfile(t, func(p *models.Profile) { p.ReligiousAffiliation = "Muslim" })

	same := buildProfile(t, func(p *models.Profile) { p.ReligiousAffiliation = "Muslim" })
	other := buildProfile(t, func(p *models.Profile) { p.ReligiousAffiliation = "Christian" })
	missing := buildProfile(t, nil)

	assert.Equal(t, 10, algorithms.Score(viewer, same, algorithms.DefaultWeights()).Total)
	assert.Equal(t, 0, algorithms.Score(viewer, other, algorithms.DefaultWeights()).Total)
	assert.Equal(t, 0, algorithms.Score(viewer, missing, algorithms.DefaultWeights()).Total)
}

func TestScore_AsymmetryIsExpected(t *testing.T) {
	// a lists one value that b shares; b lists three values of which a
	// shares one. Coverage fractions differ so the scores must differ.
	a := buildProfile(t, func(p *models.Profile) {
		p.UserID = "a"
		p.SetCoreValues([]string{"Family"})
	})
	b := buildProfile(t, func(p *models.Profile) {
		p.UserID = "b"
		p.SetCoreValues([]string{"Family", "Faith", "Ambition"})
	})

	w := algorithms.DefaultWeights()
	assert.NotEqual(t, algorithms.Score(a, b, w).Total, algorithms.Score(b, a, w).Total)
}

func TestScore_TotalClampedTo100(t *testing.T) {
	viewer := buildProfile(t, func(p *models.Profile) {
		p.City = "London"
		p.RelationshipGoal = "Marriage"
		p.ReligiousAffiliation = "Muslim"
		p.SetCultures([]string{"Pakistani"})
		p.SetCoreValues([]string{"Family"})
		p.SetLanguages([]string{"English"})
	})
	candidate := buildProfile(t, func(p *models.Profile) {
		p.City = "London"
		p.RelationshipGoal = "Marriage"
		p.ReligiousAffiliation = "Muslim"
		p.SetCultures([]string{"Pakistani"})
		p.SetCoreValues([]string{"Family"})
		p.SetLanguages([]string{"English"})
		p.IsVerified = true
	})

	// Inflated weights push the raw sum well past 100.
	w := algorithms.WeightConfig{
		MarriageIntent: 60,
		CultureFaith:   50,
		Values:         50,
		Location:       20,
		Language:       20,
		ProfileQuality: 20,
	}
	score := algorithms.Score(viewer, candidate, w)

	assert.Equal(t, 100, score.Total)
	assert.Equal(t, "Excellent Match", score.Label)
}

func TestScore_BreakdownSumTolerance(t *testing.T) {
	// Fractional weights produce per-category rounding that can disagree
	// with the once-rounded total by at most one point.
	viewer := buildProfile(t, func(p *models.Profile) {
		p.RelationshipGoal = "Marriage"
		p.SetCoreValues([]string{"Family", "Faith", "Honesty"})
		p.SetCultures([]string{"Pakistani"})
	})
	candidate := buildProfile(t, func(p *models.Profile) {
		p.RelationshipGoal = "Friendship"
		p.SetCoreValues([]string{"Family", "Faith"})
		p.SetCultures([]string{"Pakistani"})
		p.IsVerified = true
	})

	w := algorithms.WeightConfig{
		MarriageIntent: 29,
		CultureFaith:   23,
		Values:         25,
		Location:       11,
		Language:       7,
		ProfileQuality: 5,
	}
	score := algorithms.Score(viewer, candidate, w)

	sum := 0.0
	for _, points := range score.Breakdown {
		sum += points
	}
	assert.LessOrEqual(t, math.Abs(sum-float64(score.Total)), 1.0)
}

func TestMatchLabel_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "Excellent Match"},
		{90, "Excellent Match"},
		{89, "Strong Match"},
		{75, "Strong Match"},
		{74, "Good Match"},
		{60, "Good Match"},
		{59, "Potential Match"},
		{0, "Potential Match"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, algorithms.MatchLabel(tc.score), "score %d", tc.score)
	}
}
