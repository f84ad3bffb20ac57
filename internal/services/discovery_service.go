package services

import (
	"time"

	"rishta_backend/internal/algorithms"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type DiscoveryService interface {
	// Discover runs the full candidate pipeline for the viewer and
	// returns one page of ranked results.
	Discover(viewerID string, req *dto.DiscoverRequest) (*dto.DiscoverResponse, error)

	// Compatibility scores a single candidate against the viewer.
	Compatibility(viewerID, targetUserID string) (*dto.CompatibilityResponse, error)
}

type DiscoveryServiceImpl struct {
	profileRepo     repositories.ProfileRepository
	interactionRepo repositories.InteractionRepository
	moderationRepo  repositories.ModerationRepository
	matchSettings   repositories.MatchSettingsRepository
	subscriptionSvc SubscriptionService
}

func NewDiscoveryService(
	profileRepo repositories.ProfileRepository,
	interactionRepo repositories.InteractionRepository,
	moderationRepo repositories.ModerationRepository,
	matchSettings repositories.MatchSettingsRepository,
	subscriptionSvc SubscriptionService,
) DiscoveryService {
	return &DiscoveryServiceImpl{
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		moderationRepo:  moderationRepo,
		matchSettings:   matchSettings,
		subscriptionSvc: subscriptionSvc,
	}
}

func (s *DiscoveryServiceImpl) Discover(viewerID string, req *dto.DiscoverRequest) (*dto.DiscoverResponse, error) {
	viewer, err := s.viewerProfile(viewerID)
	if err != nil {
		return nil, err
	}

	exclusions, err := s.buildExclusions(viewerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	premium, err := s.subscriptionSvc.IsPremium(viewerID, now)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	weights, err := s.matchSettings.GetWeights()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	candidates, err := s.profileRepo.FindApprovedCandidates(viewerID, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ranked := algorithms.FilterAndRank(candidates, viewer, req.ToCriteria(), exclusions, weights, premium, now)

	page, pageSize := normalizePage(req.Page, req.PageSize)
	start := (page - 1) * pageSize
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}

	resp := &dto.DiscoverResponse{
		Results:  make([]dto.DiscoveryResultDTO, 0, end-start),
		Total:    len(ranked),
		Page:     page,
		PageSize: pageSize,
	}
	for _, r := range ranked[start:end] {
		profile := r.Profile
		resp.Results = append(resp.Results, dto.DiscoveryResultDTO{
			Profile:    toProfileDTO(&profile, now),
			Score:      r.Score,
			Label:      r.Label,
			Breakdown:  r.Breakdown,
			DistanceKm: r.DistanceKm,
		})
	}
	return resp, nil
}

func (s *DiscoveryServiceImpl) Compatibility(viewerID, targetUserID string) (*dto.CompatibilityResponse, error) {
	if viewerID == targetUserID {
		return nil, apperrors.ErrSelfInteraction
	}

	viewer, err := s.viewerProfile(viewerID)
	if err != nil {
		return nil, err
	}

	blocked, err := s.moderationRepo.IsBlockedEitherWay(viewerID, targetUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if blocked {
		return nil, apperrors.ErrUserBlocked
	}

	candidate, err := s.profileRepo.FindByUserID(targetUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if candidate.Status != models.ProfileStatusApproved {
		return nil, apperrors.ErrProfileNotApproved
	}

	weights, err := s.matchSettings.GetWeights()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	score := algorithms.Score(viewer, candidate, weights)
	return &dto.CompatibilityResponse{
		UserID:    targetUserID,
		Score:     score.Total,
		Label:     score.Label,
		Breakdown: score.Breakdown,
	}, nil
}

// viewerProfile loads the caller's profile and enforces the approval gate:
// only approved members can browse.
func (s *DiscoveryServiceImpl) viewerProfile(viewerID string) (*models.Profile, error) {
	viewer, err := s.profileRepo.FindByUserID(viewerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}
	if viewer.Status != models.ProfileStatusApproved {
		return nil, apperrors.ErrProfileNotApproved
	}
	return viewer, nil
}

func (s *DiscoveryServiceImpl) buildExclusions(viewerID string) (algorithms.ExclusionSets, error) {
	exclusions := algorithms.ExclusionSets{ViewerID: viewerID}

	decided, err := s.interactionRepo.ListDecidedUserIDs(viewerID)
	if err != nil {
		return exclusions, apperrors.InternalError(err)
	}
	blocked, err := s.moderationRepo.ListBlockedUserIDs(viewerID)
	if err != nil {
		return exclusions, apperrors.InternalError(err)
	}
	reported, err := s.moderationRepo.ListReportedUserIDs(viewerID)
	if err != nil {
		return exclusions, apperrors.InternalError(err)
	}

	exclusions.Interacted = toSet(decided)
	exclusions.Blocked = toSet(blocked)
	exclusions.Reported = toSet(reported)
	return exclusions, nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
