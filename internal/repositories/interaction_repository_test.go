package repositories_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
)

func newInteractionTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Interaction{}, &models.Match{}))
	return db
}

func TestUpsertDecision_OverwritesPreviousDecision(t *testing.T) {
	db := newInteractionTestDB(t)
	repo := repositories.NewInteractionRepository(db)

	require.NoError(t, repo.UpsertDecision("actor", "recipient", true))

	liked, err := repo.HasLiked("actor", "recipient")
	require.NoError(t, err)
	assert.True(t, liked)

	// Changing the mind replaces the row instead of adding one.
	require.NoError(t, repo.UpsertDecision("actor", "recipient", false))

	liked, err = repo.HasLiked("actor", "recipient")
	require.NoError(t, err)
	assert.False(t, liked)

	var count int64
	require.NoError(t, db.Model(&models.Interaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetLikers_ExcludesLikersThePassedOn(t *testing.T) {
	db := newInteractionTestDB(t)
	repo := repositories.NewInteractionRepository(db)

	require.NoError(t, repo.UpsertDecision("liker-a", "me", true))
	require.NoError(t, repo.UpsertDecision("liker-b", "me", true))
	require.NoError(t, repo.UpsertDecision("stranger", "me", false))

	// Passing on liker-b hides them from the likers list.
	require.NoError(t, repo.UpsertDecision("me", "liker-b", false))

	likers, err := repo.GetLikers("me", 10, 0)
	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, "liker-a", likers[0].ActorID)

	count, err := repo.CountLikers("me")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestListDecidedUserIDs(t *testing.T) {
	db := newInteractionTestDB(t)
	repo := repositories.NewInteractionRepository(db)

	require.NoError(t, repo.UpsertDecision("me", "liked", true))
	require.NoError(t, repo.UpsertDecision("me", "passed", false))
	require.NoError(t, repo.UpsertDecision("someone-else", "liked", true))

	ids, err := repo.ListDecidedUserIDs("me")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"liked", "passed"}, ids)
}

func TestCreateMatch_OrdersPairAndIsIdempotent(t *testing.T) {
	db := newInteractionTestDB(t)
	repo := repositories.NewInteractionRepository(db)

	match, err := repo.CreateMatch("bbb", "aaa")
	require.NoError(t, err)
	assert.Equal(t, "aaa", match.UserAID)
	assert.Equal(t, "bbb", match.UserBID)
	assert.NotEmpty(t, match.ID)

	// Matching again, in either order, returns the existing row.
	again, err := repo.CreateMatch("aaa", "bbb")
	require.NoError(t, err)
	assert.Equal(t, match.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	matchesA, err := repo.ListMatches("aaa")
	require.NoError(t, err)
	matchesB, err := repo.ListMatches("bbb")
	require.NoError(t, err)
	assert.Len(t, matchesA, 1)
	assert.Len(t, matchesB, 1)
}

func TestFindMatch_AndDelete(t *testing.T) {
	db := newInteractionTestDB(t)
	repo := repositories.NewInteractionRepository(db)

	_, err := repo.FindMatch("aaa", "bbb")
	assert.ErrorIs(t, err, repositories.ErrMatchNotFound)

	_, err = repo.CreateMatch("aaa", "bbb")
	require.NoError(t, err)

	found, err := repo.FindMatch("bbb", "aaa")
	require.NoError(t, err)
	assert.Equal(t, "aaa", found.UserAID)

	require.NoError(t, repo.DeleteMatch("aaa", "bbb"))

	_, err = repo.FindMatch("aaa", "bbb")
	assert.ErrorIs(t, err, repositories.ErrMatchNotFound)
}
