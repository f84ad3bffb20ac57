package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rishta_backend/internal/config"
	"rishta_backend/internal/events"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services"
	"rishta_backend/pkg/apperrors"
)

type referralEnv struct {
	db              *gorm.DB
	service         services.ReferralService
	subscriptionSvc services.SubscriptionService
	referralRepo    repositories.ReferralRepository
}

func setupReferral(t *testing.T) *referralEnv {
	t.Helper()
	db := newServiceTestDB(t)

	cfg := &config.Config{}
	cfg.Referral.RewardDays = 7

	referralRepo := repositories.NewReferralRepository(db)
	subscriptionSvc := services.NewSubscriptionService(repositories.NewSubscriptionRepository(db))
	notificationSvc := services.NewNotificationService(repositories.NewNotificationRepository(db))

	service := services.NewReferralService(
		referralRepo,
		repositories.NewUserRepository(db),
		subscriptionSvc,
		notificationSvc,
		stubEmail{},
		events.NewBus(),
		cfg,
	)

	return &referralEnv{
		db:              db,
		service:         service,
		subscriptionSvc: subscriptionSvc,
		referralRepo:    referralRepo,
	}
}

func TestRedeem_Validation(t *testing.T) {
	env := setupReferral(t)
	referrer := seedUser(t, env.db, "referrer@test.local")
	referee := seedUser(t, env.db, "referee@test.local")

	err := env.service.Redeem("no-such-code", referee.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReferralCode)

	err = env.service.Redeem(referrer.ReferralCode, referrer.ID)
	assert.ErrorIs(t, err, apperrors.ErrSelfReferral)

	require.NoError(t, env.service.Redeem(referrer.ReferralCode, referee.ID))

	err = env.service.Redeem(referrer.ReferralCode, referee.ID)
	assert.ErrorIs(t, err, apperrors.ErrReferralAlreadyRedeemed)
}

func TestReferralLifecycle_RedeemCompleteReward(t *testing.T) {
	env := setupReferral(t)
	referrer := seedUser(t, env.db, "referrer@test.local")
	referee := seedUser(t, env.db, "referee@test.local")

	require.NoError(t, env.service.Redeem(referrer.ReferralCode, referee.ID))

	referral, err := env.referralRepo.FindByRefereeID(referee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReferralStatusPending, referral.Status)
	assert.Equal(t, 7, referral.RewardDays)

	require.NoError(t, env.service.CompleteForUser(referee.ID))

	referral, err = env.referralRepo.FindByRefereeID(referee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReferralStatusCompleted, referral.Status)

	rewarded, err := env.service.RewardCompleted(10)
	require.NoError(t, err)
	assert.Equal(t, 1, rewarded)

	// Both sides hold premium now.
	now := time.Now()
	for _, userID := range []string{referrer.ID, referee.ID} {
		premium, err := env.subscriptionSvc.IsPremium(userID, now)
		require.NoError(t, err)
		assert.True(t, premium)
	}

	referral, err = env.referralRepo.FindByRefereeID(referee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReferralStatusRewarded, referral.Status)
	assert.NotNil(t, referral.RewardedAt)

	// Nothing left to pay out on the next worker run.
	rewarded, err = env.service.RewardCompleted(10)
	require.NoError(t, err)
	assert.Equal(t, 0, rewarded)
}

func TestCompleteForUser_NotReferredIsNoop(t *testing.T) {
	env := setupReferral(t)
	user := seedUser(t, env.db, "solo@test.local")

	assert.NoError(t, env.service.CompleteForUser(user.ID))
}

func TestCancelForUser(t *testing.T) {
	env := setupReferral(t)
	referrer := seedUser(t, env.db, "referrer@test.local")
	referee := seedUser(t, env.db, "referee@test.local")

	require.NoError(t, env.service.Redeem(referrer.ReferralCode, referee.ID))
	require.NoError(t, env.service.CancelForUser(referee.ID))

	referral, err := env.referralRepo.FindByRefereeID(referee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReferralStatusCancelled, referral.Status)
}

func TestCancelForUser_KeepsRewardedGrant(t *testing.T) {
	env := setupReferral(t)
	referrer := seedUser(t, env.db, "referrer@test.local")
	referee := seedUser(t, env.db, "referee@test.local")

	require.NoError(t, env.service.Redeem(referrer.ReferralCode, referee.ID))
	require.NoError(t, env.service.CompleteForUser(referee.ID))
	_, err := env.service.RewardCompleted(10)
	require.NoError(t, err)

	require.NoError(t, env.service.CancelForUser(referee.ID))

	referral, err := env.referralRepo.FindByRefereeID(referee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReferralStatusRewarded, referral.Status)
}

func TestSummary(t *testing.T) {
	env := setupReferral(t)
	referrer := seedUser(t, env.db, "referrer@test.local")
	refereeA := seedUser(t, env.db, "referee-a@test.local")
	refereeB := seedUser(t, env.db, "referee-b@test.local")

	require.NoError(t, env.service.Redeem(referrer.ReferralCode, refereeA.ID))
	require.NoError(t, env.service.Redeem(referrer.ReferralCode, refereeB.ID))
	require.NoError(t, env.service.CompleteForUser(refereeA.ID))
	_, err := env.service.RewardCompleted(10)
	require.NoError(t, err)

	summary, err := env.service.Summary(referrer.ID)
	require.NoError(t, err)

	assert.Equal(t, referrer.ReferralCode, summary.Code)
	assert.Equal(t, int64(1), summary.Rewarded)
	assert.Equal(t, int64(1), summary.Pending)
	assert.Len(t, summary.Referrals, 2)
}
