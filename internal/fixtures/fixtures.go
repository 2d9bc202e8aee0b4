// Package fixtures loads the seed data the service starts with.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/Eursukkul/hustle-events/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type Set struct {
	Events      []models.Event
	Profiles    []models.UserProfile
	Memberships []models.Membership
}

type eventRecord struct {
	ID             uint     `yaml:"id"`
	Title          string   `yaml:"title"`
	Date           string   `yaml:"date"`
	Time           string   `yaml:"time"`
	Location       string   `yaml:"location"`
	Address        string   `yaml:"address"`
	Price          string   `yaml:"price"`
	PricingType    string   `yaml:"pricing_type"`
	Capacity       int      `yaml:"capacity"`
	Attending      int      `yaml:"attending"`
	Type           string   `yaml:"type"`
	Level          string   `yaml:"level"`
	Amenities      []string `yaml:"amenities"`
	Organizer      string   `yaml:"organizer"`
	OrganizerID    string   `yaml:"organizer_id"`
	OrganizerImage string   `yaml:"organizer_image"`
	Image          string   `yaml:"image"`
	Website        string   `yaml:"website"`
	Description    string   `yaml:"description"`
}

type profileRecord struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Location     string `yaml:"location"`
	Bio          string `yaml:"bio"`
	Experience   string `yaml:"experience"`
	ProfileImage string `yaml:"profile_image"`
	Preferences  struct {
		EmailNotifications     bool `yaml:"email_notifications"`
		SMSNotifications       bool `yaml:"sms_notifications"`
		NewsletterSubscription bool `yaml:"newsletter_subscription"`
		PublicProfile          bool `yaml:"public_profile"`
	} `yaml:"preferences"`
}

type membershipRecord struct {
	UserID  string `yaml:"user_id"`
	EventID uint   `yaml:"event_id"`
	Role    string `yaml:"role"`
	Status  string `yaml:"status"`
}

type document struct {
	Events      []eventRecord      `yaml:"events"`
	Profiles    []profileRecord    `yaml:"profiles"`
	Memberships []membershipRecord `yaml:"memberships"`
}

// Default returns the embedded seed set.
func Default() (*Set, error) {
	return Parse(defaultSeed)
}

// Load reads a seed set from path, or the embedded one when path is empty.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	set := &Set{
		Events:      make([]models.Event, 0, len(doc.Events)),
		Profiles:    make([]models.UserProfile, 0, len(doc.Profiles)),
		Memberships: make([]models.Membership, 0, len(doc.Memberships)),
	}

	for _, r := range doc.Events {
		ev := models.Event{
			ID:             r.ID,
			Title:          r.Title,
			Date:           r.Date,
			Time:           r.Time,
			Location:       r.Location,
			Address:        r.Address,
			Price:          r.Price,
			PricingType:    models.PricingType(r.PricingType),
			Capacity:       r.Capacity,
			Attending:      r.Attending,
			Type:           models.EventType(r.Type),
			Level:          models.Level(r.Level),
			Amenities:      r.Amenities,
			Organizer:      r.Organizer,
			OrganizerID:    r.OrganizerID,
			OrganizerImage: r.OrganizerImage,
			Image:          r.Image,
			Website:        r.Website,
			Description:    r.Description,
		}
		if ev.PricingType == "" {
			ev.PricingType = models.PricingFixed
		}
		if ev.Amenities == nil {
			ev.Amenities = []string{}
		}
		if err := checkEvent(&ev); err != nil {
			return nil, err
		}
		set.Events = append(set.Events, ev)
	}

	for _, r := range doc.Profiles {
		set.Profiles = append(set.Profiles, models.UserProfile{
			ID:           r.ID,
			Name:         r.Name,
			Email:        r.Email,
			Location:     r.Location,
			Bio:          r.Bio,
			Experience:   models.Experience(r.Experience),
			ProfileImage: r.ProfileImage,
			Preferences: models.Preferences{
				EmailNotifications:     r.Preferences.EmailNotifications,
				SMSNotifications:       r.Preferences.SMSNotifications,
				NewsletterSubscription: r.Preferences.NewsletterSubscription,
				PublicProfile:          r.Preferences.PublicProfile,
			},
		})
	}

	for _, r := range doc.Memberships {
		set.Memberships = append(set.Memberships, models.Membership{
			UserID:  r.UserID,
			EventID: r.EventID,
			Role:    models.MembershipRole(r.Role),
			Status:  models.MembershipStatus(r.Status),
		})
	}

	return set, nil
}

func checkEvent(ev *models.Event) error {
	switch {
	case ev.ID == 0:
		return fmt.Errorf("seed event %q: id is required", ev.Title)
	case !ev.Type.Valid():
		return fmt.Errorf("seed event %d: unknown type %q", ev.ID, ev.Type)
	case !ev.Level.Valid():
		return fmt.Errorf("seed event %d: unknown level %q", ev.ID, ev.Level)
	case !ev.PricingType.Valid():
		return fmt.Errorf("seed event %d: unknown pricing type %q", ev.ID, ev.PricingType)
	case ev.Attending < 0:
		return fmt.Errorf("seed event %d: attending is negative", ev.ID)
	}
	return nil
}
