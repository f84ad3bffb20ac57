package services

import (
	"time"

	"rishta_backend/internal/algorithms"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/services/dto"
	"rishta_backend/pkg/apperrors"
)

type ProfileService interface {
	GetOwn(userID string) (*dto.ProfileDTO, error)
	// GetPublic returns another member's profile. Only approved profiles
	// are visible, and blocks hide both sides from each other.
	GetPublic(viewerID, targetUserID string) (*dto.ProfileDTO, error)
	// Upsert replaces the caller's profile. Any edit sends the profile
	// back to the moderation queue.
	Upsert(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileDTO, error)
	TouchLastActive(userID string) error
}

type ProfileServiceImpl struct {
	profileRepo    repositories.ProfileRepository
	moderationRepo repositories.ModerationRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	moderationRepo repositories.ModerationRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo:    profileRepo,
		moderationRepo: moderationRepo,
	}
}

func (s *ProfileServiceImpl) GetOwn(userID string) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	d := toProfileDTO(profile, time.Now())
	return &d, nil
}

func (s *ProfileServiceImpl) GetPublic(viewerID, targetUserID string) (*dto.ProfileDTO, error) {
	blocked, err := s.moderationRepo.IsBlockedEitherWay(viewerID, targetUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if blocked {
		return nil, apperrors.ErrUserBlocked
	}

	profile, err := s.profileRepo.FindByUserID(targetUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if profile.Status != models.ProfileStatusApproved {
		return nil, apperrors.ErrProfileNotApproved
	}

	d := toProfileDTO(profile, time.Now())
	return &d, nil
}

func (s *ProfileServiceImpl) Upsert(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	isNew := false
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.Profile{UserID: userID}
		isNew = true
	}

	if err := applyProfileRequest(profile, req); err != nil {
		return nil, err
	}

	// Edits go back through moderation. Verification survives an edit;
	// approval does not.
	profile.Status = models.ProfileStatusPending

	if isNew {
		err = s.profileRepo.Create(profile)
	} else {
		err = s.profileRepo.Update(profile)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	d := toProfileDTO(profile, time.Now())
	return &d, nil
}

func (s *ProfileServiceImpl) TouchLastActive(userID string) error {
	return s.profileRepo.TouchLastActive(userID, time.Now())
}

func applyProfileRequest(profile *models.Profile, req *dto.UpdateProfileRequest) error {
	profile.DisplayName = req.DisplayName
	profile.Bio = req.Bio
	profile.Occupation = req.Occupation
	profile.Education = req.Education

	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return apperrors.NewBadRequestError("date_of_birth must be YYYY-MM-DD")
		}
		if algorithms.AgeAt(dob, time.Now()) < 18 {
			return apperrors.NewBadRequestError("members must be at least 18 years old")
		}
		profile.DateOfBirth = &dob
	}

	profile.City = req.City
	profile.Country = req.Country
	profile.Latitude = req.Latitude
	profile.Longitude = req.Longitude

	profile.ReligiousAffiliation = req.ReligiousAffiliation
	profile.FaithPractice = req.FaithPractice
	profile.SetCultures(req.Cultures)
	profile.SetCoreValues(req.CoreValues)
	profile.SetLanguages(req.Languages)

	profile.RelationshipGoal = req.RelationshipGoal
	profile.MaritalStatus = req.MaritalStatus
	profile.Smoking = req.Smoking
	profile.Drinking = req.Drinking
	profile.HasChildren = req.HasChildren
	profile.SetPhotos(req.Photos)
	return nil
}

// toProfileDTO attaches the derived age when a birth date is known.
func toProfileDTO(profile *models.Profile, now time.Time) dto.ProfileDTO {
	var age *int
	if profile.DateOfBirth != nil {
		a := algorithms.AgeAt(*profile.DateOfBirth, now)
		age = &a
	}
	return dto.NewProfileDTO(profile, age)
}
