package draft

import (
	"strings"

	"github.com/Eursukkul/hustle-events/internal/models"
)

// Profile is the editable part of a user profile.
type Profile struct {
	Name         string             `json:"name" validate:"required,max=120"`
	Email        string             `json:"email" validate:"required,email"`
	Location     string             `json:"location" validate:"max=120"`
	Bio          string             `json:"bio" validate:"max=2000"`
	Experience   string             `json:"experience" validate:"required,oneof=beginner intermediate advanced professional"`
	ProfileImage string             `json:"profile_image"`
	Preferences  models.Preferences `json:"preferences"`
}

// ProfilePatch changes a subset of a Profile. Preferences, when present,
// replace all four flags.
type ProfilePatch struct {
	Name         *string             `json:"name"`
	Email        *string             `json:"email"`
	Location     *string             `json:"location"`
	Bio          *string             `json:"bio"`
	Experience   *string             `json:"experience"`
	ProfileImage *string             `json:"profile_image"`
	Preferences  *models.Preferences `json:"preferences"`
}

func FromProfile(p *models.UserProfile) Profile {
	return Profile{
		Name:         p.Name,
		Email:        p.Email,
		Location:     p.Location,
		Bio:          p.Bio,
		Experience:   string(p.Experience),
		ProfileImage: p.ProfileImage,
		Preferences:  p.Preferences,
	}
}

// Apply returns a copy of d with the patch applied.
func (d Profile) Apply(p ProfilePatch) Profile {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.Name, p.Name)
	set(&d.Email, p.Email)
	set(&d.Location, p.Location)
	set(&d.Bio, p.Bio)
	set(&d.Experience, p.Experience)
	set(&d.ProfileImage, p.ProfileImage)
	if p.Preferences != nil {
		d.Preferences = *p.Preferences
	}
	return d
}

func (d *Profile) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Experience = strings.TrimSpace(d.Experience)
	return Struct(d)
}

// Commit validates the draft and returns base with the draft's fields
// copied over. base itself is not modified.
func (d Profile) Commit(base models.UserProfile) (models.UserProfile, error) {
	if err := d.Validate(); err != nil {
		return base, err
	}
	base.Name = d.Name
	base.Email = d.Email
	base.Location = d.Location
	base.Bio = d.Bio
	base.Experience = models.Experience(d.Experience)
	base.ProfileImage = d.ProfileImage
	base.Preferences = d.Preferences
	return base, nil
}
