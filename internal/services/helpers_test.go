package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rishta_backend/internal/cache"
	"rishta_backend/internal/models"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Interaction{},
		&models.Match{},
		&models.Block{},
		&models.Report{},
		&models.Referral{},
		&models.Notification{},
		&models.SubscriptionPlan{},
		&models.UserSubscription{},
		&models.MatchSettings{},
	))
	return db
}

func newTestRedis(t *testing.T) *cache.RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return &cache.RedisCache{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         models.UserRoleMember,
		Status:       models.UserStatusActive,
		IsVerified:   true,
		ReferralCode: uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedApprovedProfile(t *testing.T, db *gorm.DB, userID, name string, mutate func(p *models.Profile)) *models.Profile {
	t.Helper()
	dob := time.Date(1994, 6, 15, 0, 0, 0, 0, time.UTC)
	profile := &models.Profile{
		UserID:      userID,
		DisplayName: name,
		DateOfBirth: &dob,
		City:        "London",
		Country:     "UK",
		Status:      models.ProfileStatusApproved,
	}
	profile.SetCultures(nil)
	profile.SetCoreValues(nil)
	profile.SetLanguages(nil)
	profile.SetPhotos(nil)
	if mutate != nil {
		mutate(profile)
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

// stubEmail satisfies the narrow email interfaces the services depend on.
type stubEmail struct{}

func (stubEmail) SendMatchNotification(to, name, matchName string) error   { return nil }
func (stubEmail) SendReferralReward(to, name string, rewardDays int) error { return nil }
