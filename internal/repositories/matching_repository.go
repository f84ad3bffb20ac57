package repositories

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"rishta_backend/internal/algorithms"
	"rishta_backend/internal/models"
)

type MatchSettingsRepository interface {
	// GetWeights loads the persisted weights, falling back to the
	// defaults when no row has been saved yet.
	GetWeights() (algorithms.WeightConfig, error)
	SaveWeights(weights algorithms.WeightConfig, updatedBy string) error
}

type MatchSettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewMatchSettingsRepository(db *gorm.DB) MatchSettingsRepository {
	return &MatchSettingsRepositoryImpl{db: db}
}

func (r *MatchSettingsRepositoryImpl) GetWeights() (algorithms.WeightConfig, error) {
	var settings models.MatchSettings
	err := r.db.Order("updated_at DESC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return algorithms.DefaultWeights(), nil
		}
		return algorithms.WeightConfig{}, err
	}

	var weights algorithms.WeightConfig
	if err := json.Unmarshal(settings.Weights, &weights); err != nil {
		return algorithms.WeightConfig{}, err
	}
	return weights, nil
}

func (r *MatchSettingsRepositoryImpl) SaveWeights(weights algorithms.WeightConfig, updatedBy string) error {
	raw, err := json.Marshal(weights)
	if err != nil {
		return err
	}

	var settings models.MatchSettings
	err = r.db.First(&settings).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = models.MatchSettings{Weights: raw, UpdatedBy: updatedBy}
		return r.db.Create(&settings).Error
	case err != nil:
		return err
	default:
		settings.Weights = raw
		settings.UpdatedBy = updatedBy
		return r.db.Save(&settings).Error
	}
}
