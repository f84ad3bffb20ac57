package services

import (
	"context"
	"time"

	"rishta_backend/internal/cache"
	"rishta_backend/internal/events"
	"rishta_backend/internal/logger"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type InteractionService interface {
	// Decide records a like/pass and reports whether it completed a
	// mutual like.
	Decide(ctx context.Context, actorID string, req *dto.DecisionRequest) (*dto.DecisionResponse, error)
	ListLikers(ctx context.Context, userID string, limit, offset int) (*dto.LikersResponse, error)
	LikeCount(ctx context.Context, userID string) (*dto.LikeCountResponse, error)
	ListMatches(userID string) (*dto.MatchesResponse, error)
	Unmatch(userID, otherUserID string) error
}

type InteractionServiceImpl struct {
	interactionRepo repositories.InteractionRepository
	profileRepo     repositories.ProfileRepository
	moderationRepo  repositories.ModerationRepository
	userRepo        repositories.UserRepository
	notificationSvc NotificationService
	emailProvider   MatchEmailRef
	redis           *cache.RedisCache
	bus             *events.Bus
}

// MatchEmailRef is the slice of the email provider this service needs.
type MatchEmailRef interface {
	SendMatchNotification(to, name, matchName string) error
}

func NewInteractionService(
	interactionRepo repositories.InteractionRepository,
	profileRepo repositories.ProfileRepository,
	moderationRepo repositories.ModerationRepository,
	userRepo repositories.UserRepository,
	notificationSvc NotificationService,
	emailProvider MatchEmailRef,
	redis *cache.RedisCache,
	bus *events.Bus,
) InteractionService {
	return &InteractionServiceImpl{
		interactionRepo: interactionRepo,
		profileRepo:     profileRepo,
		moderationRepo:  moderationRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		emailProvider:   emailProvider,
		redis:           redis,
		bus:             bus,
	}
}

func (s *InteractionServiceImpl) Decide(ctx context.Context, actorID string, req *dto.DecisionRequest) (*dto.DecisionResponse, error) {
	if actorID == req.RecipientID {
		return nil, apperrors.ErrSelfInteraction
	}

	blocked, err := s.moderationRepo.IsBlockedEitherWay(actorID, req.RecipientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if blocked {
		return nil, apperrors.ErrUserBlocked
	}

	recipient, err := s.profileRepo.FindByUserID(req.RecipientID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if recipient.Status != models.ProfileStatusApproved {
		return nil, apperrors.ErrProfileNotApproved
	}

	// An overwritten like must not double-count in the cache.
	previouslyLiked, err := s.interactionRepo.HasLiked(actorID, req.RecipientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.interactionRepo.UpsertDecision(actorID, req.RecipientID, req.Liked); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.adjustLikeCount(ctx, req.RecipientID, previouslyLiked, req.Liked)

	resp := &dto.DecisionResponse{}
	if !req.Liked {
		return resp, nil
	}

	mutual, err := s.interactionRepo.HasLiked(req.RecipientID, actorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !mutual {
		return resp, nil
	}

	match, err := s.interactionRepo.CreateMatch(actorID, req.RecipientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp.Mutual = true
	resp.MatchID = match.ID
	s.announceMatch(ctx, match, actorID, req.RecipientID)

	if matchDTO, err := s.matchDTO(match, actorID); err == nil {
		resp.Matched = matchDTO
	}
	return resp, nil
}

// adjustLikeCount keeps the cached counter in step with the transition
// between the previous and the new decision.
func (s *InteractionServiceImpl) adjustLikeCount(ctx context.Context, recipientID string, wasLiked, isLiked bool) {
	var err error
	switch {
	case isLiked && !wasLiked:
		_, err = s.redis.Incr(ctx, s.redis.KeyForLikeCount(recipientID))
	case !isLiked && wasLiked:
		_, err = s.redis.Decr(ctx, s.redis.KeyForLikeCount(recipientID))
	default:
		return
	}
	if err != nil {
		// Cache drift self-heals on the next miss.
		logger.CtxWarn(ctx, "failed to adjust like count cache",
			"recipient_id", recipientID, "error", err.Error())
	}
}

func (s *InteractionServiceImpl) announceMatch(ctx context.Context, match *models.Match, actorID, recipientID string) {
	actorProfile, errA := s.profileRepo.FindByUserID(actorID)
	recipientProfile, errB := s.profileRepo.FindByUserID(recipientID)
	if errA != nil || errB != nil {
		return
	}

	data := map[string]string{"match_id": match.ID}
	s.notificationSvc.Notify(actorID, "new_match", "It's a match!",
		"You and "+recipientProfile.DisplayName+" liked each other.", data)
	s.notificationSvc.Notify(recipientID, "new_match", "It's a match!",
		"You and "+actorProfile.DisplayName+" liked each other.", data)

	if recipientUser, err := s.userRepo.FindByID(recipientID); err == nil {
		if err := s.emailProvider.SendMatchNotification(recipientUser.Email, recipientProfile.DisplayName, actorProfile.DisplayName); err != nil {
			logger.CtxWarn(ctx, "failed to send match email", "user_id", recipientID, "error", err.Error())
		}
	}

	s.bus.Publish(ctx, events.Event{
		Type:    events.MatchCreated,
		Payload: map[string]string{"match_id": match.ID, "user_a": match.UserAID, "user_b": match.UserBID},
	})
}

func (s *InteractionServiceImpl) ListLikers(ctx context.Context, userID string, limit, offset int) (*dto.LikersResponse, error) {
	decisions, err := s.interactionRepo.GetLikers(userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.interactionRepo.CountLikers(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	resp := &dto.LikersResponse{
		Likers: make([]dto.LikerDTO, 0, len(decisions)),
		Total:  total,
	}
	for _, d := range decisions {
		profile, err := s.profileRepo.FindByUserID(d.ActorID)
		if err != nil {
			continue
		}
		resp.Likers = append(resp.Likers, dto.LikerDTO{
			UserID:  d.ActorID,
			Profile: toProfileDTO(profile, now),
			LikedAt: d.UpdatedAt,
		})
	}
	return resp, nil
}

// LikeCount serves from Redis and falls back to the database on a miss,
// repopulating the cache on the way out.
func (s *InteractionServiceImpl) LikeCount(ctx context.Context, userID string) (*dto.LikeCountResponse, error) {
	count, hit, err := s.redis.GetLikeCount(ctx, userID)
	if err != nil {
		logger.CtxWarn(ctx, "like count cache read failed", "user_id", userID, "error", err.Error())
	} else if hit {
		return &dto.LikeCountResponse{Count: count}, nil
	}

	count, err = s.interactionRepo.CountLikers(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.redis.UpdateLikeCount(ctx, userID, count); err != nil {
		logger.CtxWarn(ctx, "like count cache write failed", "user_id", userID, "error", err.Error())
	}
	return &dto.LikeCountResponse{Count: count}, nil
}

func (s *InteractionServiceImpl) ListMatches(userID string) (*dto.MatchesResponse, error) {
	matches, err := s.interactionRepo.ListMatches(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.MatchesResponse{Matches: make([]dto.MatchDTO, 0, len(matches))}
	for i := range matches {
		matchDTO, err := s.matchDTO(&matches[i], userID)
		if err != nil {
			continue
		}
		resp.Matches = append(resp.Matches, *matchDTO)
	}
	return resp, nil
}

func (s *InteractionServiceImpl) Unmatch(userID, otherUserID string) error {
	if _, err := s.interactionRepo.FindMatch(userID, otherUserID); err != nil {
		if apperrors.Is(err, repositories.ErrMatchNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.interactionRepo.DeleteMatch(userID, otherUserID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// matchDTO renders a match from the given member's perspective.
func (s *InteractionServiceImpl) matchDTO(match *models.Match, viewerID string) (*dto.MatchDTO, error) {
	otherID := match.UserAID
	if otherID == viewerID {
		otherID = match.UserBID
	}
	profile, err := s.profileRepo.FindByUserID(otherID)
	if err != nil {
		return nil, err
	}
	return &dto.MatchDTO{
		MatchID:   match.ID,
		UserID:    otherID,
		Profile:   toProfileDTO(profile, time.Now()),
		MatchedAt: match.CreatedAt,
	}, nil
}
