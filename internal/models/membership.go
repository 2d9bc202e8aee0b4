package models

import "time"

type MembershipRole string

const (
	RoleAttendee  MembershipRole = "attendee"
	RoleOrganizer MembershipRole = "organizer"
)

type MembershipStatus string

const (
	StatusRegistered MembershipStatus = "registered"
	StatusPublished  MembershipStatus = "published"
	StatusWaitlisted MembershipStatus = "waitlisted"
)

type Membership struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    string           `gorm:"not null;uniqueIndex:idx_membership_user_event" json:"user_id"`
	EventID   uint             `gorm:"not null;uniqueIndex:idx_membership_user_event" json:"event_id"`
	Role      MembershipRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status    MembershipStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
