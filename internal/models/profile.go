package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Profile holds everything discovery needs about a member. Most fields are
// optional by design: scoring treats an absent field as a zero contribution
// and filters treat it as a failed predicate.
type Profile struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null"`
	DisplayName string `gorm:"size:64;not null"`
	Bio         string
	Occupation  string
	Education   string
	DateOfBirth *time.Time

	City      string `gorm:"index"`
	Country   string
	Latitude  *float64
	Longitude *float64

	ReligiousAffiliation string
	FaithPractice        string
	Cultures             datatypes.JSON `gorm:"type:jsonb"` // ["Pakistani", ...]
	CoreValues           datatypes.JSON `gorm:"type:jsonb"` // ["Family", "Faith", ...]
	Languages            datatypes.JSON `gorm:"type:jsonb"` // ["English", "Urdu", ...]

	RelationshipGoal string
	MaritalStatus    string
	Smoking          string
	Drinking         string
	HasChildren      bool

	IsVerified   bool          `gorm:"default:false"`
	Status       ProfileStatus `gorm:"type:varchar(20);default:'pending';index"`
	LastActiveAt *time.Time
	Photos       datatypes.JSON `gorm:"type:jsonb"` // ordered opaque storage keys
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func encodeStringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return raw
}

func (p *Profile) GetCultures() []string   { return decodeStringList(p.Cultures) }
func (p *Profile) GetCoreValues() []string { return decodeStringList(p.CoreValues) }
func (p *Profile) GetLanguages() []string  { return decodeStringList(p.Languages) }
func (p *Profile) GetPhotos() []string     { return decodeStringList(p.Photos) }

func (p *Profile) SetCultures(v []string)   { p.Cultures = encodeStringList(v) }
func (p *Profile) SetCoreValues(v []string) { p.CoreValues = encodeStringList(v) }
func (p *Profile) SetLanguages(v []string)  { p.Languages = encodeStringList(v) }
func (p *Profile) SetPhotos(v []string)     { p.Photos = encodeStringList(v) }

// HasCoordinates reports whether the profile can take part in distance math.
func (p *Profile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
