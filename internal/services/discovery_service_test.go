package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type discoveryEnv struct {
	db              *gorm.DB
	service         services.DiscoveryService
	interactionRepo repositories.InteractionRepository
	moderationRepo  repositories.ModerationRepository
}

func setupDiscovery(t *testing.T) *discoveryEnv {
	t.Helper()
	db := newServiceTestDB(t)

	profileRepo := repositories.NewProfileRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)
	moderationRepo := repositories.NewModerationRepository(db)
	matchSettingsRepo := repositories.NewMatchSettingsRepository(db)
	subscriptionSvc := services.NewSubscriptionService(repositories.NewSubscriptionRepository(db))

	return &discoveryEnv{
		db:              db,
		service:         services.NewDiscoveryService(profileRepo, interactionRepo, moderationRepo, matchSettingsRepo, subscriptionSvc),
		interactionRepo: interactionRepo,
		moderationRepo:  moderationRepo,
	}
}

func resultUserIDs(resp *dto.DiscoverResponse) []string {
	ids := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		ids = append(ids, r.Profile.UserID)
	}
	return ids
}

func TestDiscover_ViewerMustHaveApprovedProfile(t *testing.T) {
	env := setupDiscovery(t)
	viewer := seedUser(t, env.db, "viewer@test.local")

	_, err := env.service.Discover(viewer.ID, &dto.DiscoverRequest{})
	assert.ErrorIs(t, err, apperrors.ErrProfileIncomplete)

	seedApprovedProfile(t, env.db, viewer.ID, "Viewer", func(p *models.Profile) {
		p.Status = models.ProfileStatusPending
	})

	_, err = env.service.Discover(viewer.ID, &dto.DiscoverRequest{})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotApproved)
}

func TestDiscover_ExcludesSwipedBlockedAndReported(t *testing.T) {
	env := setupDiscovery(t)

	viewer := seedUser(t, env.db, "viewer@test.local")
	swiped := seedUser(t, env.db, "swiped@test.local")
	blocker := seedUser(t, env.db, "blocker@test.local")
	reported := seedUser(t, env.db, "reported@test.local")
	fresh := seedUser(t, env.db, "fresh@test.local")

	seedApprovedProfile(t, env.db, viewer.ID, "Viewer", nil)
	seedApprovedProfile(t, env.db, swiped.ID, "Swiped", nil)
	seedApprovedProfile(t, env.db, blocker.ID, "Blocker", nil)
	seedApprovedProfile(t, env.db, reported.ID, "Reported", nil)
	seedApprovedProfile(t, env.db, fresh.ID, "Fresh", nil)

	require.NoError(t, env.interactionRepo.UpsertDecision(viewer.ID, swiped.ID, false))
	// A block in either direction hides the pair from each other.
	require.NoError(t, env.moderationRepo.CreateBlock(blocker.ID, viewer.ID))
	require.NoError(t, env.moderationRepo.CreateReport(&models.Report{
		ReporterID: viewer.ID,
		ReportedID: reported.ID,
		Reason:     "fake_profile",
	}))

	resp, err := env.service.Discover(viewer.ID, &dto.DiscoverRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{fresh.ID}, resultUserIDs(resp))
	assert.Equal(t, 1, resp.Total)
}

func TestDiscover_RanksByScoreDescending(t *testing.T) {
	env := setupDiscovery(t)

	viewer := seedUser(t, env.db, "viewer@test.local")
	strong := seedUser(t, env.db, "strong@test.local")
	weak := seedUser(t, env.db, "weak@test.local")

	seedApprovedProfile(t, env.db, viewer.ID, "Viewer", func(p *models.Profile) {
		p.RelationshipGoal = "Marriage"
		p.SetCoreValues([]string{"Family", "Faith"})
	})
	// weak is seeded first so repository order alone would put it first.
	seedApprovedProfile(t, env.db, weak.ID, "Weak", nil)
	seedApprovedProfile(t, env.db, strong.ID, "Strong", func(p *models.Profile) {
		p.RelationshipGoal = "Marriage"
		p.SetCoreValues([]string{"Family", "Faith"})
	})

	resp, err := env.service.Discover(viewer.ID, &dto.DiscoverRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, strong.ID, resp.Results[0].Profile.UserID)
	assert.Equal(t, weak.ID, resp.Results[1].Profile.UserID)
	assert.Greater(t, resp.Results[0].Score, resp.Results[1].Score)
}

func TestDiscover_PremiumFiltersInertForFreeViewer(t *testing.T) {
	env := setupDiscovery(t)

	viewer := seedUser(t, env.db, "viewer@test.local")
	unverified := seedUser(t, env.db, "unverified@test.local")

	seedApprovedProfile(t, env.db, viewer.ID, "Viewer", nil)
	seedApprovedProfile(t, env.db, unverified.ID, "Unverified", nil)

	resp, err := env.service.Discover(viewer.ID, &dto.DiscoverRequest{VerifiedOnly: true})
	require.NoError(t, err)

	// The viewer holds no subscription, so the verified-only gate is ignored.
	assert.Equal(t, []string{unverified.ID}, resultUserIDs(resp))
}

func TestDiscover_Pagination(t *testing.T) {
	env := setupDiscovery(t)

	viewer := seedUser(t, env.db, "viewer@test.local")
	seedApprovedProfile(t, env.db, viewer.ID, "Viewer", nil)
	for i := 0; i < 3; i++ {
		u := seedUser(t, env.db, fmt.Sprintf("candidate-%d@test.local", i))
		seedApprovedProfile(t, env.db, u.ID, fmt.Sprintf("Candidate %d", i), nil)
	}

	resp, err := env.service.Discover(viewer.ID, &dto.DiscoverRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Results, 1)
}

func TestCompatibility_Gates(t *testing.T) {
	env := setupDiscovery(t)

	viewer := seedUser(t, env.db, "viewer@test.local")
	other := seedUser(t, env.db, "other@test.local")
	seedApprovedProfile(t, env.db, viewer.ID, "Viewer", nil)

	_, err := env.service.Compatibility(viewer.ID, viewer.ID)
	assert.ErrorIs(t, err, apperrors.ErrSelfInteraction)

	seedApprovedProfile(t, env.db, other.ID, "Other", func(p *models.Profile) {
		p.Status = models.ProfileStatusPending
	})
	_, err = env.service.Compatibility(viewer.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotApproved)
}

func TestCompatibility_ScoresApprovedCandidate(t *testing.T) {
	env := setupDiscovery(t)

	viewer := seedUser(t, env.db, "viewer@test.local")
	other := seedUser(t, env.db, "other@test.local")

	seedApprovedProfile(t, env.db, viewer.ID, "Viewer", func(p *models.Profile) {
		p.RelationshipGoal = "Marriage"
	})
	seedApprovedProfile(t, env.db, other.ID, "Other", func(p *models.Profile) {
		p.RelationshipGoal = "Marriage"
	})

	resp, err := env.service.Compatibility(viewer.ID, other.ID)
	require.NoError(t, err)

	assert.Equal(t, other.ID, resp.UserID)
	// Shared goal (30) + shared city (10).
	assert.Equal(t, 40, resp.Score)
	assert.Equal(t, "Potential Match", resp.Label)
}
