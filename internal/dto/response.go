package dto

import (
	"time"

	"github.com/Eursukkul/hustle-events/internal/models"
	"github.com/Eursukkul/hustle-events/internal/service"
)

type EventResponse struct {
	ID             uint               `json:"id"`
	Title          string             `json:"title"`
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	Location       string             `json:"location"`
	Address        string             `json:"address"`
	Price          string             `json:"price"`
	PricingType    models.PricingType `json:"pricing_type"`
	Capacity       int                `json:"capacity"`
	Attending      int                `json:"attending"`
	SpotsLeft      int                `json:"spots_left"`
	FillPercent    float64            `json:"fill_percent"`
	Type           models.EventType   `json:"type"`
	TypeLabel      string             `json:"type_label"`
	Level          models.Level       `json:"level"`
	LevelLabel     string             `json:"level_label"`
	Amenities      []string           `json:"amenities"`
	Organizer      string             `json:"organizer"`
	OrganizerID    string             `json:"organizer_id,omitempty"`
	OrganizerImage string             `json:"organizer_image"`
	Image          string             `json:"image"`
	Website        string             `json:"website"`
	Description    string             `json:"description"`
	CreatedAt      time.Time          `json:"created_at"`
}

type ProfileResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Location     string             `json:"location"`
	Bio          string             `json:"bio"`
	Experience   models.Experience  `json:"experience"`
	ProfileImage string             `json:"profile_image"`
	Preferences  models.Preferences `json:"preferences"`
	Notice       *service.Notice    `json:"notice,omitempty"`
}

type MembershipResponse struct {
	ID         uint                    `json:"id"`
	EventID    uint                    `json:"event_id"`
	EventTitle string                  `json:"event_title"`
	EventDate  string                  `json:"event_date"`
	Role       models.MembershipRole   `json:"role"`
	Status     models.MembershipStatus `json:"status"`
}

type ErrorResponse struct {
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

func ToEventResponse(e *models.Event) EventResponse {
	amenities := e.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Date:           e.Date,
		Time:           e.Time,
		Location:       e.Location,
		Address:        e.Address,
		Price:          e.Price,
		PricingType:    e.PricingType,
		Capacity:       e.Capacity,
		Attending:      e.Attending,
		SpotsLeft:      e.SpotsLeft(),
		FillPercent:    e.FillPercent(),
		Type:           e.Type,
		TypeLabel:      e.Type.Label(),
		Level:          e.Level,
		LevelLabel:     e.Level.Label(),
		Amenities:      amenities,
		Organizer:      e.Organizer,
		OrganizerID:    e.OrganizerID,
		OrganizerImage: e.OrganizerImage,
		Image:          e.Image,
		Website:        e.Website,
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
	}
}

func ToEventResponses(events []models.Event) []EventResponse {
	resp := make([]EventResponse, len(events))
	for i := range events {
		resp[i] = ToEventResponse(&events[i])
	}
	return resp
}

func ToProfileResponse(p *models.UserProfile, notice *service.Notice) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Location:     p.Location,
		Bio:          p.Bio,
		Experience:   p.Experience,
		ProfileImage: p.ProfileImage,
		Preferences:  p.Preferences,
		Notice:       notice,
	}
}

func ToMembershipResponse(m *models.Membership) MembershipResponse {
	resp := MembershipResponse{
		ID:      m.ID,
		EventID: m.EventID,
		Role:    m.Role,
		Status:  m.Status,
	}
	if m.Event != nil {
		resp.EventTitle = m.Event.Title
		resp.EventDate = m.Event.Date
	}
	return resp
}
