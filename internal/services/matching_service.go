package services

import (
	"rishta_backend/internal/algorithms"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type MatchSettingsService interface {
	GetWeights() (*dto.WeightsResponse, error)
	UpdateWeights(adminID string, req *dto.UpdateWeightsRequest) (*dto.WeightsResponse, error)
}

type MatchSettingsServiceImpl struct {
	matchSettingsRepo repositories.MatchSettingsRepository
}

func NewMatchSettingsService(matchSettingsRepo repositories.MatchSettingsRepository) MatchSettingsService {
	return &MatchSettingsServiceImpl{matchSettingsRepo: matchSettingsRepo}
}

func (s *MatchSettingsServiceImpl) GetWeights() (*dto.WeightsResponse, error) {
	weights, err := s.matchSettingsRepo.GetWeights()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.WeightsResponse{Weights: weights}, nil
}

func (s *MatchSettingsServiceImpl) UpdateWeights(adminID string, req *dto.UpdateWeightsRequest) (*dto.WeightsResponse, error) {
	weights := req.ToWeights()
	if weights == (algorithms.WeightConfig{}) {
		return nil, apperrors.NewBadRequestError("at least one weight must be positive")
	}
	if err := s.matchSettingsRepo.SaveWeights(weights, adminID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.WeightsResponse{Weights: weights}, nil
}
