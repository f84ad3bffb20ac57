package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rishta_backend/internal/cache"
	"rishta_backend/internal/events"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type interactionEnv struct {
	db              *gorm.DB
	redis           *cache.RedisCache
	service         services.InteractionService
	interactionRepo repositories.InteractionRepository
	moderationRepo  repositories.ModerationRepository
}

func setupInteraction(t *testing.T) *interactionEnv {
	t.Helper()
	db := newServiceTestDB(t)
	redisCache := newTestRedis(t)

	interactionRepo := repositories.NewInteractionRepository(db)
	moderationRepo := repositories.NewModerationRepository(db)
	notificationSvc := services.NewNotificationService(repositories.NewNotificationRepository(db))

	service := services.NewInteractionService(
		interactionRepo,
		repositories.NewProfileRepository(db),
		moderationRepo,
		repositories.NewUserRepository(db),
		notificationSvc,
		stubEmail{},
		redisCache,
		events.NewBus(),
	)

	return &interactionEnv{
		db:              db,
		redis:           redisCache,
		service:         service,
		interactionRepo: interactionRepo,
		moderationRepo:  moderationRepo,
	}
}

func (e *interactionEnv) seedMember(t *testing.T, email, name string) *models.User {
	t.Helper()
	user := seedUser(t, e.db, email)
	seedApprovedProfile(t, e.db, user.ID, name, nil)
	return user
}

func TestDecide_SelfRejected(t *testing.T) {
	env := setupInteraction(t)
	user := env.seedMember(t, "a@test.local", "A")

	_, err := env.service.Decide(context.Background(), user.ID, &dto.DecisionRequest{RecipientID: user.ID, Liked: true})
	assert.ErrorIs(t, err, apperrors.ErrSelfInteraction)
}

func TestDecide_BlockedPairRejected(t *testing.T) {
	env := setupInteraction(t)
	a := env.seedMember(t, "a@test.local", "A")
	b := env.seedMember(t, "b@test.local", "B")

	require.NoError(t, env.moderationRepo.CreateBlock(b.ID, a.ID))

	_, err := env.service.Decide(context.Background(), a.ID, &dto.DecisionRequest{RecipientID: b.ID, Liked: true})
	assert.ErrorIs(t, err, apperrors.ErrUserBlocked)
}

func TestDecide_RecipientMustBeApproved(t *testing.T) {
	env := setupInteraction(t)
	a := env.seedMember(t, "a@test.local", "A")
	b := seedUser(t, env.db, "b@test.local")
	seedApprovedProfile(t, env.db, b.ID, "B", func(p *models.Profile) {
		p.Status = models.ProfileStatusPending
	})

	_, err := env.service.Decide(context.Background(), a.ID, &dto.DecisionRequest{RecipientID: b.ID, Liked: true})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotApproved)
}

func TestDecide_MutualLikeCreatesMatch(t *testing.T) {
	env := setupInteraction(t)
	ctx := context.Background()
	a := env.seedMember(t, "a@test.local", "A")
	b := env.seedMember(t, "b@test.local", "B")

	first, err := env.service.Decide(ctx, a.ID, &dto.DecisionRequest{RecipientID: b.ID, Liked: true})
	require.NoError(t, err)
	assert.False(t, first.Mutual)
	assert.Empty(t, first.MatchID)

	second, err := env.service.Decide(ctx, b.ID, &dto.DecisionRequest{RecipientID: a.ID, Liked: true})
	require.NoError(t, err)
	assert.True(t, second.Mutual)
	assert.NotEmpty(t, second.MatchID)
	require.NotNil(t, second.Matched)
	assert.Equal(t, a.ID, second.Matched.UserID)

	// Both sides get an in-app notification.
	var count int64
	require.NoError(t, env.db.Model(&models.Notification{}).
		Where("type = ?", "new_match").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestDecide_LikeCountCacheTransitions(t *testing.T) {
	env := setupInteraction(t)
	ctx := context.Background()
	a := env.seedMember(t, "a@test.local", "A")
	b := env.seedMember(t, "b@test.local", "B")

	decide := func(liked bool) {
		_, err := env.service.Decide(ctx, a.ID, &dto.DecisionRequest{RecipientID: b.ID, Liked: liked})
		require.NoError(t, err)
	}

	decide(true)
	count, hit, err := env.redis.GetLikeCount(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(1), count)

	// Re-liking is a no-op for the counter.
	decide(true)
	count, _, err = env.redis.GetLikeCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Changing the like to a pass takes it back off.
	decide(false)
	count, _, err = env.redis.GetLikeCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLikeCount_FallsBackToDatabaseAndRepopulates(t *testing.T) {
	env := setupInteraction(t)
	ctx := context.Background()
	b := env.seedMember(t, "b@test.local", "B")
	likerA := env.seedMember(t, "liker-a@test.local", "Liker A")
	likerB := env.seedMember(t, "liker-b@test.local", "Liker B")

	// Seed the likes behind the cache's back.
	require.NoError(t, env.interactionRepo.UpsertDecision(likerA.ID, b.ID, true))
	require.NoError(t, env.interactionRepo.UpsertDecision(likerB.ID, b.ID, true))

	resp, err := env.service.LikeCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Count)

	count, hit, err := env.redis.GetLikeCount(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(2), count)
}

func TestListLikers_ReturnsProfiles(t *testing.T) {
	env := setupInteraction(t)
	ctx := context.Background()
	b := env.seedMember(t, "b@test.local", "B")
	liker := env.seedMember(t, "liker@test.local", "Liker")

	require.NoError(t, env.interactionRepo.UpsertDecision(liker.ID, b.ID, true))

	resp, err := env.service.ListLikers(ctx, b.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Likers, 1)
	assert.Equal(t, liker.ID, resp.Likers[0].UserID)
	assert.Equal(t, "Liker", resp.Likers[0].Profile.DisplayName)
}

func TestUnmatch(t *testing.T) {
	env := setupInteraction(t)
	ctx := context.Background()
	a := env.seedMember(t, "a@test.local", "A")
	b := env.seedMember(t, "b@test.local", "B")

	_, err := env.service.Decide(ctx, a.ID, &dto.DecisionRequest{RecipientID: b.ID, Liked: true})
	require.NoError(t, err)
	resp, err := env.service.Decide(ctx, b.ID, &dto.DecisionRequest{RecipientID: a.ID, Liked: true})
	require.NoError(t, err)
	require.True(t, resp.Mutual)

	require.NoError(t, env.service.Unmatch(b.ID, a.ID))

	matches, err := env.service.ListMatches(a.ID)
	require.NoError(t, err)
	assert.Empty(t, matches.Matches)

	assert.Error(t, env.service.Unmatch(b.ID, a.ID))
}
