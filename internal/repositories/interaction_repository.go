package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rishta_backend/internal/models"
)

var ErrMatchNotFound = errors.New("match not found")

type InteractionRepository interface {
	// UpsertDecision records actor's like/pass on recipient. Re-deciding
	// the same pair overwrites the previous row.
	UpsertDecision(actorID, recipientID string, liked bool) error
	HasLiked(actorID, recipientID string) (bool, error)

	// GetLikers returns decisions from users who liked the recipient and
	// whom the recipient has not passed on, newest first.
	GetLikers(recipientID string, limit, offset int) ([]models.Interaction, error)
	CountLikers(recipientID string) (int64, error)

	// ListDecidedUserIDs returns every user the actor has already swiped on.
	ListDecidedUserIDs(actorID string) ([]string, error)

	// Matches
	CreateMatch(userA, userB string) (*models.Match, error)
	ListMatches(userID string) ([]models.Match, error)
	FindMatch(userA, userB string) (*models.Match, error)
	DeleteMatch(userA, userB string) error
}

type InteractionRepositoryImpl struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &InteractionRepositoryImpl{db: db}
}

func (r *InteractionRepositoryImpl) UpsertDecision(actorID, recipientID string, liked bool) error {
	decision := models.Interaction{
		ActorID:     actorID,
		RecipientID: recipientID,
		Liked:       liked,
	}
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
		}).
		Create(&decision).Error
}

func (r *InteractionRepositoryImpl) HasLiked(actorID, recipientID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Interaction{}).
		Where("actor_id = ? AND recipient_id = ? AND liked = ?", actorID, recipientID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *InteractionRepositoryImpl) GetLikers(recipientID string, limit, offset int) ([]models.Interaction, error) {
	var decisions []models.Interaction
	err := r.db.
		Table("interactions d").
		Where("d.recipient_id = ? AND d.liked = ?", recipientID, true).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM interactions d2
				WHERE d2.actor_id = ?
				  AND d2.recipient_id = d.actor_id
				  AND d2.liked = ?
			)`, recipientID, false).
		Order("d.updated_at DESC, d.actor_id DESC").
		Limit(limit).Offset(offset).
		Find(&decisions).Error
	return decisions, err
}

func (r *InteractionRepositoryImpl) CountLikers(recipientID string) (int64, error) {
	var count int64
	err := r.db.
		Table("interactions d").
		Where("d.recipient_id = ? AND d.liked = ?", recipientID, true).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM interactions d2
				WHERE d2.actor_id = ?
				  AND d2.recipient_id = d.actor_id
				  AND d2.liked = ?
			)`, recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *InteractionRepositoryImpl) ListDecidedUserIDs(actorID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Interaction{}).
		Where("actor_id = ?", actorID).
		Pluck("recipient_id", &ids).Error
	return ids, err
}

// Matches

// orderPair keeps the smaller id first so each pair is stored once.
func orderPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

func (r *InteractionRepositoryImpl) CreateMatch(userA, userB string) (*models.Match, error) {
	a, b := orderPair(userA, userB)
	match := models.Match{UserAID: a, UserBID: b}
	err := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_a_id"}, {Name: "user_b_id"}},
			DoNothing: true,
		}).
		Create(&match).Error
	if err != nil {
		return nil, err
	}
	// The OnConflict path leaves the struct without an id; re-read so
	// callers always get the persisted row.
	return r.FindMatch(a, b)
}

func (r *InteractionRepositoryImpl) ListMatches(userID string) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

func (r *InteractionRepositoryImpl) FindMatch(userA, userB string) (*models.Match, error) {
	a, b := orderPair(userA, userB)
	var match models.Match
	err := r.db.First(&match, "user_a_id = ? AND user_b_id = ?", a, b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *InteractionRepositoryImpl) DeleteMatch(userA, userB string) error {
	a, b := orderPair(userA, userB)
	return r.db.Delete(&models.Match{}, "user_a_id = ? AND user_b_id = ?", a, b).Error
}
