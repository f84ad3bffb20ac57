package algorithms_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rishta_backend/internal/algorithms"
	"rishta_backend/internal/models"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func candidateProfile(t *testing.T, userID string, mutate func(p *models.Profile)) models.Profile {
	t.Helper()
	dob := testNow.AddDate(-30, 0, 0)
	p := buildProfile(t, func(p *models.Profile) {
		p.UserID = userID
		p.DisplayName = "Candidate " + userID
		p.DateOfBirth = &dob
		if mutate != nil {
			mutate(p)
		}
	})
	return *p
}

func runPipeline(t *testing.T, candidates []models.Profile, criteria algorithms.FilterCriteria, exclusions algorithms.ExclusionSets, premium bool) []algorithms.ScoredProfile {
	t.Helper()
	viewer := buildProfile(t, func(p *models.Profile) {
		p.UserID = "viewer"
		p.City = "London"
		p.Country = "UK"
		p.RelationshipGoal = "Marriage"
	})
	if exclusions.ViewerID == "" {
		exclusions.ViewerID = viewer.UserID
	}
	return algorithms.FilterAndRank(candidates, viewer, criteria, exclusions, algorithms.DefaultWeights(), premium, testNow)
}

func resultIDs(results []algorithms.ScoredProfile) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Profile.UserID)
	}
	return ids
}

func TestFilterAndRank_ExclusionsAlwaysWin(t *testing.T) {
	candidates := []models.Profile{
		candidateProfile(t, "viewer", nil), // self sneaks into the page
		candidateProfile(t, "swiped", nil),
		candidateProfile(t, "blocked", nil),
		candidateProfile(t, "reported", nil),
		candidateProfile(t, "fresh", nil),
	}
	exclusions := algorithms.ExclusionSets{
		ViewerID:   "viewer",
		Interacted: map[string]bool{"swiped": true},
		Blocked:    map[string]bool{"blocked": true},
		Reported:   map[string]bool{"reported": true},
	}

	results := runPipeline(t, candidates, algorithms.FilterCriteria{}, exclusions, false)

	assert.Equal(t, []string{"fresh"}, resultIDs(results))
}

func TestFilterAndRank_AgeBoundary(t *testing.T) {
	// Exactly 25 today: birthday anniversary falls on testNow.
	exactDOB := testNow.AddDate(-25, 0, 0)
	// Turns 25 tomorrow, so still 24 today.
	youngDOB := testNow.AddDate(-25, 0, 1)

	candidates := []models.Profile{
		candidateProfile(t, "exact", func(p *models.Profile) { p.DateOfBirth = &exactDOB }),
		candidateProfile(t, "young", func(p *models.Profile) { p.DateOfBirth = &youngDOB }),
	}
	criteria := algorithms.FilterCriteria{AgeMin: 25, AgeMax: 40}

	results := runPipeline(t, candidates, criteria, algorithms.ExclusionSets{}, false)

	assert.Equal(t, []string{"exact"}, resultIDs(results))
}

func TestFilterAndRank_JustTurnedSeventeenExcluded(t *testing.T) {
	dob := testNow.AddDate(-17, 0, 1) // 17th birthday was yesterday
	candidates := []models.Profile{
		candidateProfile(t, "minor", func(p *models.Profile) {
			p.DateOfBirth = &dob
			p.IsVerified = true
			p.RelationshipGoal = "Marriage"
		}),
	}
	criteria := algorithms.FilterCriteria{AgeMin: 18, AgeMax: 65}

	results := runPipeline(t, candidates, criteria, algorithms.ExclusionSets{}, false)

	assert.Empty(t, results)
}

func TestFilterAndRank_UnknownBirthDateFailsAgeFilter(t *testing.T) {
	candidates := []models.Profile{
		candidateProfile(t, "no-dob", func(p *models.Profile) { p.DateOfBirth = nil }),
	}

	withFilter := runPipeline(t, candidates, algorithms.FilterCriteria{AgeMin: 18}, algorithms.ExclusionSets{}, false)
	withoutFilter := runPipeline(t, candidates, algorithms.FilterCriteria{}, algorithms.ExclusionSets{}, false)

	assert.Empty(t, withFilter)
	assert.Len(t, withoutFilter, 1)
}

func TestFilterAndRank_SearchMatchesFreeText(t *testing.T) {
	candidates := []models.Profile{
		candidateProfile(t, "by-name", func(p *models.Profile) { p.DisplayName = "Amira Khan" }),
		candidateProfile(t, "by-bio", func(p *models.Profile) { p.Bio = "Loves hiking and photography" }),
		candidateProfile(t, "by-job", func(p *models.Profile) { p.Occupation = "Software Engineer" }),
		candidateProfile(t, "no-match", nil),
	}

	results := runPipeline(t, candidates, algorithms.FilterCriteria{SearchQuery: "ENGINEER"}, algorithms.ExclusionSets{}, false)

	assert.Equal(t, []string{"by-job"}, resultIDs(results))
}

func TestFilterAndRank_ExactFieldFilters(t *testing.T) {
	candidates := []models.Profile{
		candidateProfile(t, "match", func(p *models.Profile) {
			p.City = "London"
			p.MaritalStatus = "single"
			p.Smoking = "never"
		}),
		candidateProfile(t, "wrong-city", func(p *models.Profile) {
			p.City = "Leeds"
			p.MaritalStatus = "single"
			p.Smoking = "never"
		}),
		candidateProfile(t, "smoker", func(p *models.Profile) {
			p.City = "London"
			p.MaritalStatus = "single"
			p.Smoking = "regularly"
		}),
	}
	criteria := algorithms.FilterCriteria{City: "London", MaritalStatus: "single", Smoking: "never"}

	results := runPipeline(t, candidates, criteria, algorithms.ExclusionSets{}, false)

	assert.Equal(t, []string{"match"}, resultIDs(results))
}

func TestFilterAndRank_HasChildrenFilter(t *testing.T) {
	candidates := []models.Profile{
		candidateProfile(t, "with-kids", func(p *models.Profile) { p.HasChildren = true }),
		candidateProfile(t, "without-kids", nil),
	}

	results := runPipeline(t, candidates, algorithms.FilterCriteria{HasChildren: "false"}, algorithms.ExclusionSets{}, false)

	assert.Equal(t, []string{"without-kids"}, resultIDs(results))
}

func TestFilterAndRank_PremiumGatesInertForFreeViewers(t *testing.T) {
	stale := testNow.Add(-48 * time.Hour)
	candidates := []models.Profile{
		candidateProfile(t, "unverified", func(p *models.Profile) {
			p.IsVerified = false
			p.LastActiveAt = &stale
		}),
	}
	criteria := algorithms.FilterCriteria{
		VerifiedOnly:   true,
		MinPhotos:      3,
		RecentlyActive: true,
	}

	free := runPipeline(t, candidates, criteria, algorithms.ExclusionSets{}, false)
	premium := runPipeline(t, candidates, criteria, algorithms.ExclusionSets{}, true)

	assert.Equal(t, []string{"unverified"}, resultIDs(free))
	assert.Empty(t, premium)
}

func TestFilterAndRank_PremiumFilters(t *testing.T) {
	recent := testNow.Add(-2 * time.Hour)
	stale := testNow.Add(-25 * time.Hour)
	candidates := []models.Profile{
		candidateProfile(t, "good", func(p *models.Profile) {
			p.IsVerified = true
			p.LastActiveAt = &recent
			p.SetPhotos([]string{"a.jpg", "b.jpg", "c.jpg"})
		}),
		candidateProfile(t, "few-photos", func(p *models.Profile) {
			p.IsVerified = true
			p.LastActiveAt = &recent
			p.SetPhotos([]string{"a.jpg"})
		}),
		candidateProfile(t, "inactive", func(p *models.Profile) {
			p.IsVerified = true
			p.LastActiveAt = &stale
			p.SetPhotos([]string{"a.jpg", "b.jpg", "c.jpg"})
		}),
	}
	criteria := algorithms.FilterCriteria{VerifiedOnly: true, MinPhotos: 3, RecentlyActive: true}

	results := runPipeline(t, candidates, criteria, algorithms.ExclusionSets{}, true)

	assert.Equal(t, []string{"good"}, resultIDs(results))
}

func TestFilterAndRank_DistanceAttachedAndGated(t *testing.T) {
	londonLat, londonLon := 51.5074, -0.1278
	edinburghLat, edinburghLon := 55.9533, -3.1883

	viewer := buildProfile(t, func(p *models.Profile) {
		p.UserID = "viewer"
		p.Latitude = &londonLat
		p.Longitude = &londonLon
	})
	candidates := []models.Profile{
		candidateProfile(t, "near", func(p *models.Profile) {
			p.Latitude = &londonLat
			p.Longitude = &londonLon
		}),
		candidateProfile(t, "far", func(p *models.Profile) {
			p.Latitude = &edinburghLat
			p.Longitude = &edinburghLon
		}),
		candidateProfile(t, "no-coords", nil),
	}
	exclusions := algorithms.ExclusionSets{ViewerID: "viewer"}

	// Free viewer: distance is informational only, nobody is cut.
	free := algorithms.FilterAndRank(candidates, viewer, algorithms.FilterCriteria{MaxDistanceKm: 50}, exclusions, algorithms.DefaultWeights(), false, testNow)
	require.Len(t, free, 3)
	for _, r := range free {
		switch r.Profile.UserID {
		case "no-coords":
			assert.Nil(t, r.DistanceKm)
		case "near":
			require.NotNil(t, r.DistanceKm)
			assert.InDelta(t, 0, *r.DistanceKm, 1e-9)
		case "far":
			require.NotNil(t, r.DistanceKm)
			assert.InDelta(t, 534, *r.DistanceKm, 10)
		}
	}

	// Premium viewer: the cutoff drops the far candidate but not the one
	// with unknown coordinates.
	premium := algorithms.FilterAndRank(candidates, viewer, algorithms.FilterCriteria{MaxDistanceKm: 50}, exclusions, algorithms.DefaultWeights(), true, testNow)
	assert.ElementsMatch(t, []string{"near", "no-coords"}, resultIDs(premium))
}

func TestFilterAndRank_SortsByScoreStably(t *testing.T) {
	candidates := []models.Profile{
		candidateProfile(t, "low-first", nil),
		candidateProfile(t, "high", func(p *models.Profile) {
			p.RelationshipGoal = "Marriage"
			p.IsVerified = true
		}),
		candidateProfile(t, "low-second", nil),
	}

	results := runPipeline(t, candidates, algorithms.FilterCriteria{}, algorithms.ExclusionSets{}, false)

	require.Len(t, results, 3)
	// Highest score first; equal scores keep their input order.
	assert.Equal(t, []string{"high", "low-first", "low-second"}, resultIDs(results))
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Equal(t, results[1].Score, results[2].Score)
}

func TestHaversine_Symmetric(t *testing.T) {
	d1 := algorithms.Haversine(51.5074, -0.1278, 48.8566, 2.3522)
	d2 := algorithms.Haversine(48.8566, 2.3522, 51.5074, -0.1278)

	assert.InDelta(t, d1, d2, 1e-9)
	assert.InDelta(t, 344, d1, 10) // London-Paris
}

func TestAgeAt_AnniversaryMath(t *testing.T) {
	dob := time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 26, algorithms.AgeAt(dob, testNow))
	assert.Equal(t, 25, algorithms.AgeAt(dob, testNow.AddDate(0, 0, -1)))
}
