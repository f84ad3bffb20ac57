package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"rishta_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(userID string) (*models.Profile, error)
	Create(profile *models.Profile) error
	Update(profile *models.Profile) error
	UpdateStatus(userID string, status models.ProfileStatus) error
	SetVerified(userID string, verified bool) error
	TouchLastActive(userID string, at time.Time) error

	// FindApprovedCandidates returns every approved profile except the
	// viewer's own and those whose user id is in excludeUserIDs, newest
	// first. The id tie-break keeps the order deterministic.
	FindApprovedCandidates(viewerUserID string, excludeUserIDs []string) ([]models.Profile, error)

	// Moderation queue
	FindByStatus(status models.ProfileStatus, limit, offset int) ([]models.Profile, error)
	CountByStatus(status models.ProfileStatus) (int64, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateStatus(userID string, status models.ProfileStatus) error {
	result := r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SetVerified(userID string, verified bool) error {
	result := r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("is_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) TouchLastActive(userID string, at time.Time) error {
	return r.db.Model(&models.Profile{}).Where("user_id = ?", userID).
		Update("last_active_at", at).Error
}

func (r *ProfileRepositoryImpl) FindApprovedCandidates(viewerUserID string, excludeUserIDs []string) ([]models.Profile, error) {
	var profiles []models.Profile
	query := r.db.Where("status = ?", models.ProfileStatusApproved).
		Where("user_id <> ?", viewerUserID)
	if len(excludeUserIDs) > 0 {
		query = query.Where("user_id NOT IN ?", excludeUserIDs)
	}
	err := query.Order("created_at DESC, id DESC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) FindByStatus(status models.ProfileStatus, limit, offset int) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) CountByStatus(status models.ProfileStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
