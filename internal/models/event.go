package models

import (
	"strings"
	"time"
)

type EventType string

const (
	TypeSocial      EventType = "social"
	TypeWorkshop    EventType = "workshop"
	TypeCongress    EventType = "congress"
	TypeCompetition EventType = "competition"
	TypeOther       EventType = "other"
)

var eventTypeLabels = map[EventType]string{
	TypeSocial:      "Social Dance",
	TypeWorkshop:    "Workshop",
	TypeCongress:    "Congress",
	TypeCompetition: "Competition",
	TypeOther:       "Other",
}

func (t EventType) Valid() bool {
	_, ok := eventTypeLabels[t]
	return ok
}

func (t EventType) Label() string {
	if l, ok := eventTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

type Level string

const (
	LevelAll          Level = "all"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) Valid() bool {
	switch l {
	case LevelAll, LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func (l Level) Label() string {
	if l == LevelAll {
		return "All Levels"
	}
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

type PricingType string

const (
	PricingFixed    PricingType = "fixed"
	PricingSliding  PricingType = "sliding"
	PricingDonation PricingType = "donation"
	PricingFree     PricingType = "free"
)

// FreePrice is the display price of events with PricingFree.
const FreePrice = "Free"

func (p PricingType) Valid() bool {
	switch p {
	case PricingFixed, PricingSliding, PricingDonation, PricingFree:
		return true
	}
	return false
}

type Event struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	Title          string      `gorm:"not null" json:"title"`
	Date           string      `gorm:"not null" json:"date"`
	Time           string      `gorm:"not null" json:"time"`
	Location       string      `gorm:"not null" json:"location"`
	Address        string      `gorm:"not null" json:"address"`
	Price          string      `gorm:"not null" json:"price"`
	PricingType    PricingType `gorm:"type:varchar(20);not null;default:'fixed'" json:"pricing_type"`
	Capacity       int         `gorm:"not null" json:"capacity"`
	Attending      int         `gorm:"not null;default:0" json:"attending"`
	Type           EventType   `gorm:"type:varchar(20);not null" json:"type"`
	Level          Level       `gorm:"type:varchar(20);not null" json:"level"`
	Amenities      []string    `gorm:"serializer:json" json:"amenities"`
	Organizer      string      `json:"organizer"`
	OrganizerID    string      `gorm:"index" json:"organizer_id,omitempty"`
	OrganizerImage string      `json:"organizer_image"`
	Image          string      `json:"image"`
	Website        string      `json:"website"`
	Description    string      `gorm:"not null" json:"description"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (e *Event) SpotsLeft() int {
	return e.Capacity - e.Attending
}

// FillPercent is attending/capacity as a percentage. It is not clamped, so an
// overbooked event reports more than 100. A zero capacity reports 0.
func (e *Event) FillPercent() float64 {
	if e.Capacity == 0 {
		return 0
	}
	return float64(e.Attending) / float64(e.Capacity) * 100
}

// IsFree reports whether the event is free of charge.
func (e *Event) IsFree() bool {
	return e.PricingType == PricingFree || strings.EqualFold(e.Price, FreePrice)
}
