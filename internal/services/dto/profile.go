package dto

import (
	"time"

	"rishta_backend/internal/models"
)

// UpdateProfileRequest - create-or-replace payload for the caller's profile.
// Optional matchmaking fields may be omitted; scoring treats them as absent.
type UpdateProfileRequest struct {
	DisplayName string  `json:"display_name" validate:"required,min=2,max=64"`
	Bio         string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Occupation  string  `json:"occupation,omitempty" validate:"omitempty,max=128"`
	Education   string  `json:"education,omitempty" validate:"omitempty,max=128"`
	DateOfBirth *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD

	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`

	ReligiousAffiliation string   `json:"religious_affiliation,omitempty"`
	FaithPractice        string   `json:"faith_practice,omitempty"`
	Cultures             []string `json:"cultures,omitempty" validate:"omitempty,max=10"`
	CoreValues           []string `json:"core_values,omitempty" validate:"omitempty,max=10"`
	Languages            []string `json:"languages,omitempty" validate:"omitempty,max=10"`

	RelationshipGoal string `json:"relationship_goal,omitempty" validate:"omitempty,is-relationship-goal"`
	MaritalStatus    string `json:"marital_status,omitempty" validate:"omitempty,is-marital-status"`
	Smoking          string `json:"smoking,omitempty" validate:"omitempty,is-habit-frequency"`
	Drinking         string `json:"drinking,omitempty" validate:"omitempty,is-habit-frequency"`
	HasChildren      bool   `json:"has_children"`

	Photos []string `json:"photos,omitempty" validate:"omitempty,max=9"`
}

// ProfileDTO - full profile as returned to its owner and moderators.
type ProfileDTO struct {
	UserID      string  `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Bio         string  `json:"bio,omitempty"`
	Occupation  string  `json:"occupation,omitempty"`
	Education   string  `json:"education,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Age         *int    `json:"age,omitempty"`

	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	ReligiousAffiliation string   `json:"religious_affiliation,omitempty"`
	FaithPractice        string   `json:"faith_practice,omitempty"`
	Cultures             []string `json:"cultures,omitempty"`
	CoreValues           []string `json:"core_values,omitempty"`
	Languages            []string `json:"languages,omitempty"`

	RelationshipGoal string `json:"relationship_goal,omitempty"`
	MaritalStatus    string `json:"marital_status,omitempty"`
	Smoking          string `json:"smoking,omitempty"`
	Drinking         string `json:"drinking,omitempty"`
	HasChildren      bool   `json:"has_children"`

	IsVerified   bool                 `json:"is_verified"`
	Status       models.ProfileStatus `json:"status"`
	LastActiveAt *time.Time           `json:"last_active_at,omitempty"`
	Photos       []string             `json:"photos,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// NewProfileDTO maps a profile model to its transport shape. Age is
// computed against the given clock when a birth date is present.
func NewProfileDTO(p *models.Profile, age *int) ProfileDTO {
	var dob *string
	if p.DateOfBirth != nil {
		s := p.DateOfBirth.Format("2006-01-02")
		dob = &s
	}
	return ProfileDTO{
		UserID:               p.UserID,
		DisplayName:          p.DisplayName,
		Bio:                  p.Bio,
		Occupation:           p.Occupation,
		Education:            p.Education,
		DateOfBirth:          dob,
		Age:                  age,
		City:                 p.City,
		Country:              p.Country,
		Latitude:             p.Latitude,
		Longitude:            p.Longitude,
		ReligiousAffiliation: p.ReligiousAffiliation,
		FaithPractice:        p.FaithPractice,
		Cultures:             p.GetCultures(),
		CoreValues:           p.GetCoreValues(),
		Languages:            p.GetLanguages(),
		RelationshipGoal:     p.RelationshipGoal,
		MaritalStatus:        p.MaritalStatus,
		Smoking:              p.Smoking,
		Drinking:             p.Drinking,
		HasChildren:          p.HasChildren,
		IsVerified:           p.IsVerified,
		Status:               p.Status,
		LastActiveAt:         p.LastActiveAt,
		Photos:               p.GetPhotos(),
		CreatedAt:            p.CreatedAt,
	}
}
