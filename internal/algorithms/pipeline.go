package algorithms

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"rishta_backend/internal/models"
)

const (
	earthRadiusKm     = 6371
	recentActivityTTL = 24 * time.Hour
)

// FilterCriteria is the viewer's search form after DTO validation. Zero
// values mean "not set". Premium-only fields are carried regardless of the
// viewer's tier; FilterAndRank ignores them for free accounts.
type FilterCriteria struct {
	AgeMin      int
	AgeMax      int
	SearchQuery string

	City          string
	Faith         string
	MaritalStatus string
	Smoking       string
	Drinking      string
	HasChildren   string // "true" / "false", empty when unset

	// Premium-gated.
	VerifiedOnly   bool
	MinPhotos      int
	RecentlyActive bool
	MaxDistanceKm  float64
}

// ExclusionSets holds the user ids a viewer must never see again:
// anyone already swiped on, anyone in a block either way, and anyone
// the viewer reported. Keys are user ids, not profile ids.
type ExclusionSets struct {
	ViewerID   string
	Interacted map[string]bool
	Blocked    map[string]bool
	Reported   map[string]bool
}

// Contains reports whether the given user id is barred from the viewer's
// results. The viewer's own id is always barred.
func (e ExclusionSets) Contains(userID string) bool {
	if userID == e.ViewerID {
		return true
	}
	return e.Interacted[userID] || e.Blocked[userID] || e.Reported[userID]
}

// ScoredProfile is one ranked discovery result. DistanceKm is set whenever
// both sides have coordinates, independent of any distance filter.
type ScoredProfile struct {
	Profile    models.Profile
	Score      int
	Label      string
	Breakdown  map[string]float64
	DistanceKm *float64
}

// FilterAndRank runs the discovery pipeline over a candidate page:
// exclusions, then the cheap predicate filters, then distance, then scoring,
// then a stable sort by descending score. Candidates arrive in repository
// order (newest first) and ties keep that order. Pure except for reading
// the clock the caller passes in.
func FilterAndRank(
	candidates []models.Profile,
	viewer *models.Profile,
	criteria FilterCriteria,
	exclusions ExclusionSets,
	weights WeightConfig,
	premiumViewer bool,
	now time.Time,
) []ScoredProfile {
	results := make([]ScoredProfile, 0, len(candidates))

	for i := range candidates {
		candidate := &candidates[i]

		if exclusions.Contains(candidate.UserID) {
			continue
		}
		if !matchesAge(candidate, criteria, now) {
			continue
		}
		if !matchesSearch(candidate, criteria.SearchQuery) {
			continue
		}
		if !matchesExactFields(candidate, criteria) {
			continue
		}
		if premiumViewer && !matchesPremiumFilters(candidate, criteria, now) {
			continue
		}

		var distance *float64
		if viewer.HasCoordinates() && candidate.HasCoordinates() {
			d := Haversine(*viewer.Latitude, *viewer.Longitude, *candidate.Latitude, *candidate.Longitude)
			if premiumViewer && criteria.MaxDistanceKm > 0 && d > criteria.MaxDistanceKm {
				continue
			}
			distance = &d
		}

		score := Score(viewer, candidate, weights)
		results = append(results, ScoredProfile{
			Profile:    *candidate,
			Score:      score.Total,
			Label:      score.Label,
			Breakdown:  score.Breakdown,
			DistanceKm: distance,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// matchesAge rejects candidates outside the requested band. A candidate
// with no date of birth cannot prove an age, so any age bound rejects them.
func matchesAge(candidate *models.Profile, criteria FilterCriteria, now time.Time) bool {
	if criteria.AgeMin <= 0 && criteria.AgeMax <= 0 {
		return true
	}
	if candidate.DateOfBirth == nil {
		return false
	}
	age := AgeAt(*candidate.DateOfBirth, now)
	if criteria.AgeMin > 0 && age < criteria.AgeMin {
		return false
	}
	if criteria.AgeMax > 0 && age > criteria.AgeMax {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match over the candidate's
// free-text fields.
func matchesSearch(candidate *models.Profile, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		candidate.DisplayName,
		candidate.Bio,
		candidate.Occupation,
		candidate.Education,
	}, " "))
	return strings.Contains(haystack, query)
}

func matchesExactFields(candidate *models.Profile, criteria FilterCriteria) bool {
	if criteria.City != "" && candidate.City != criteria.City {
		return false
	}
	if criteria.Faith != "" && candidate.ReligiousAffiliation != criteria.Faith {
		return false
	}
	if criteria.MaritalStatus != "" && candidate.MaritalStatus != criteria.MaritalStatus {
		return false
	}
	if criteria.Smoking != "" && candidate.Smoking != criteria.Smoking {
		return false
	}
	if criteria.Drinking != "" && candidate.Drinking != criteria.Drinking {
		return false
	}
	if criteria.HasChildren != "" && strconv.FormatBool(candidate.HasChildren) != criteria.HasChildren {
		return false
	}
	return true
}

func matchesPremiumFilters(candidate *models.Profile, criteria FilterCriteria, now time.Time) bool {
	if criteria.VerifiedOnly && !candidate.IsVerified {
		return false
	}
	if criteria.MinPhotos > 0 && len(candidate.GetPhotos()) < criteria.MinPhotos {
		return false
	}
	if criteria.RecentlyActive {
		if candidate.LastActiveAt == nil || now.Sub(*candidate.LastActiveAt) > recentActivityTTL {
			return false
		}
	}
	return true
}

// AgeAt returns full years elapsed since dob, i.e. age ticks over on the
// birthday anniversary, not at the start of the birth year.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	anniversary := dob.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}

// Haversine returns the great-circle distance in kilometres between two
// coordinate pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
