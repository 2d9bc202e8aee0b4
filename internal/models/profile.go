package models

import "time"

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
	ExperienceProfessional Experience = "professional"
)

func (x Experience) Valid() bool {
	switch x {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceProfessional:
		return true
	}
	return false
}

// Preferences is a flat value; every flag is always present.
type Preferences struct {
	EmailNotifications     bool `json:"email_notifications"`
	SMSNotifications       bool `json:"sms_notifications"`
	NewsletterSubscription bool `json:"newsletter_subscription"`
	PublicProfile          bool `json:"public_profile"`
}

type UserProfile struct {
	ID           string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Email        string      `gorm:"not null" json:"email"`
	Location     string      `json:"location"`
	Bio          string      `json:"bio"`
	Experience   Experience  `gorm:"type:varchar(20);not null" json:"experience"`
	ProfileImage string      `json:"profile_image"`
	Preferences  Preferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "profiles"
}
