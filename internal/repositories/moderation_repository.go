package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rishta_backend/internal/models"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrBlockNotFound  = errors.New("block not found")
)

type ModerationRepository interface {
	// Blocks
	CreateBlock(blockerID, blockedID string) error
	DeleteBlock(blockerID, blockedID string) error
	IsBlockedEitherWay(userA, userB string) (bool, error)
	ListBlocks(blockerID string) ([]models.Block, error)
	// ListBlockedUserIDs returns everyone in a block with the user,
	// regardless of which side created it.
	ListBlockedUserIDs(userID string) ([]string, error)

	// Reports
	CreateReport(report *models.Report) error
	FindReportByID(id string) (*models.Report, error)
	ListReports(status models.ReportStatus, limit, offset int) ([]models.Report, error)
	CountReports(status models.ReportStatus) (int64, error)
	ResolveReport(id, resolvedBy string, status models.ReportStatus, at time.Time) error
	ListReportedUserIDs(reporterID string) ([]string, error)
}

type ModerationRepositoryImpl struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &ModerationRepositoryImpl{db: db}
}

// Blocks

func (r *ModerationRepositoryImpl) CreateBlock(blockerID, blockedID string) error {
	block := models.Block{BlockerID: blockerID, BlockedID: blockedID}
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blocker_id"}, {Name: "blocked_id"}},
			DoNothing: true,
		}).
		Create(&block).Error
}

func (r *ModerationRepositoryImpl) DeleteBlock(blockerID, blockedID string) error {
	result := r.db.Delete(&models.Block{}, "blocker_id = ? AND blocked_id = ?", blockerID, blockedID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}

func (r *ModerationRepositoryImpl) IsBlockedEitherWay(userA, userB string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	return count > 0, err
}

func (r *ModerationRepositoryImpl) ListBlocks(blockerID string) ([]models.Block, error) {
	var blocks []models.Block
	err := r.db.Where("blocker_id = ?", blockerID).
		Order("created_at DESC").
		Find(&blocks).Error
	return blocks, err
}

func (r *ModerationRepositoryImpl) ListBlockedUserIDs(userID string) ([]string, error) {
	var outgoing, incoming []string
	if err := r.db.Model(&models.Block{}).
		Where("blocker_id = ?", userID).
		Pluck("blocked_id", &outgoing).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Block{}).
		Where("blocked_id = ?", userID).
		Pluck("blocker_id", &incoming).Error; err != nil {
		return nil, err
	}
	return append(outgoing, incoming...), nil
}

// Reports

func (r *ModerationRepositoryImpl) CreateReport(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *ModerationRepositoryImpl) FindReportByID(id string) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ModerationRepositoryImpl) ListReports(status models.ReportStatus, limit, offset int) ([]models.Report, error) {
	var reports []models.Report
	query := r.db.Order("created_at ASC").Limit(limit).Offset(offset)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&reports).Error
	return reports, err
}

func (r *ModerationRepositoryImpl) CountReports(status models.ReportStatus) (int64, error) {
	var count int64
	query := r.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *ModerationRepositoryImpl) ResolveReport(id, resolvedBy string, status models.ReportStatus, at time.Time) error {
	result := r.db.Model(&models.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"resolved_by": resolvedBy,
		"resolved_at": at,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (r *ModerationRepositoryImpl) ListReportedUserIDs(reporterID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Report{}).
		Where("reporter_id = ?", reporterID).
		Pluck("reported_id", &ids).Error
	return ids, err
}
