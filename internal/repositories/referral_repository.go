package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"rishta_backend/internal/models"
)

var ErrReferralNotFound = errors.New("referral not found")

type ReferralRepository interface {
	Create(referral *models.Referral) error
	FindByRefereeID(refereeID string) (*models.Referral, error)
	ListByReferrer(referrerID string, limit, offset int) ([]models.Referral, error)
	CountByReferrerAndStatus(referrerID string, status models.ReferralStatus) (int64, error)
	UpdateStatus(id string, status models.ReferralStatus) error
	MarkRewarded(id string, at time.Time) error

	// FindCompleted returns referrals waiting for their reward grant.
	FindCompleted(limit int) ([]models.Referral, error)
}

type ReferralRepositoryImpl struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &ReferralRepositoryImpl{db: db}
}

func (r *ReferralRepositoryImpl) Create(referral *models.Referral) error {
	return r.db.Create(referral).Error
}

func (r *ReferralRepositoryImpl) FindByRefereeID(refereeID string) (*models.Referral, error) {
	var referral models.Referral
	err := r.db.First(&referral, "referee_id = ?", refereeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferralNotFound
		}
		return nil, err
	}
	return &referral, nil
}

func (r *ReferralRepositoryImpl) ListByReferrer(referrerID string, limit, offset int) ([]models.Referral, error) {
	var referrals []models.Referral
	err := r.db.Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&referrals).Error
	return referrals, err
}

func (r *ReferralRepositoryImpl) CountByReferrerAndStatus(referrerID string, status models.ReferralStatus) (int64, error) {
	var count int64
	query := r.db.Model(&models.Referral{}).Where("referrer_id = ?", referrerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *ReferralRepositoryImpl) UpdateStatus(id string, status models.ReferralStatus) error {
	result := r.db.Model(&models.Referral{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReferralNotFound
	}
	return nil
}

func (r *ReferralRepositoryImpl) MarkRewarded(id string, at time.Time) error {
	result := r.db.Model(&models.Referral{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      models.ReferralStatusRewarded,
		"rewarded_at": at,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReferralNotFound
	}
	return nil
}

func (r *ReferralRepositoryImpl) FindCompleted(limit int) ([]models.Referral, error) {
	var referrals []models.Referral
	err := r.db.Where("status = ?", models.ReferralStatusCompleted).
		Order("created_at ASC").
		Limit(limit).
		Find(&referrals).Error
	return referrals, err
}
