package draft

import (
	"errors"
	"testing"

	"github.com/Eursukkul/hustle-events/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() Event {
	return Event{
		Title:       "Boston Hustle Night",
		Description: "Monthly social with a beginner lesson.",
		Date:        "August 1, 2025",
		StartTime:   "7:00 PM",
		EndTime:     "11:00 PM",
		Location:    "Back Bay Ballroom",
		Address:     "1 Boylston St, Boston, MA",
		PricingType: "fixed",
		Price:       "$15",
		Capacity:    "80",
		Type:        "social",
		Level:       "all",
	}
}

func TestAssemble_Success(t *testing.T) {
	ev, err := sampleDraft().Assemble()

	require.NoError(t, err)
	assert.Equal(t, "Boston Hustle Night", ev.Title)
	assert.Equal(t, "7:00 PM - 11:00 PM", ev.Time)
	assert.Equal(t, "$15", ev.Price)
	assert.Equal(t, 80, ev.Capacity)
	assert.Equal(t, 0, ev.Attending)
	assert.Equal(t, models.TypeSocial, ev.Type)
	assert.Equal(t, models.LevelAll, ev.Level)
	assert.Equal(t, []string{}, ev.Amenities)
}

func TestAssemble_CarriesOrganizer(t *testing.T) {
	d := sampleDraft()
	d.Organizer = "  Boston Hustle Collective "
	d.OrganizerID = "user-1"
	d.OrganizerImage = " /placeholder.svg?height=100&width=100 "

	ev, err := d.Assemble()

	require.NoError(t, err)
	assert.Equal(t, "Boston Hustle Collective", ev.Organizer)
	assert.Equal(t, "user-1", ev.OrganizerID)
	assert.Equal(t, "/placeholder.svg?height=100&width=100", ev.OrganizerImage)
}

func TestAssemble_FreeIgnoresPrice(t *testing.T) {
	d := sampleDraft()
	d.PricingType = "free"
	d.Price = "$999"

	ev, err := d.Assemble()

	require.NoError(t, err)
	assert.Equal(t, "Free", ev.Price)
	assert.Equal(t, models.PricingFree, ev.PricingType)
}

func TestAssemble_FreeWithoutPrice(t *testing.T) {
	d := sampleDraft()
	d.PricingType = "free"
	d.Price = ""

	_, err := d.Assemble()
	assert.NoError(t, err)
}

func TestAssemble_PriceRequiredUnlessFree(t *testing.T) {
	for _, pt := range []string{"fixed", "sliding", "donation"} {
		d := sampleDraft()
		d.PricingType = pt
		d.Price = ""

		_, err := d.Assemble()

		var verr *ValidationError
		require.True(t, errors.As(err, &verr), pt)
		assert.Equal(t, "is required", verr.Fields["price"], pt)
	}
}

func TestAssemble_DefaultsPricingTypeToFixed(t *testing.T) {
	d := sampleDraft()
	d.PricingType = ""

	ev, err := d.Assemble()

	require.NoError(t, err)
	assert.Equal(t, models.PricingFixed, ev.PricingType)
}

func TestAssemble_AmenityLabels(t *testing.T) {
	d := sampleDraft()
	d.Amenities = Amenities{BeginnerLesson: true, Bar: false, WaterProvided: true}

	ev, err := d.Assemble()

	require.NoError(t, err)
	assert.Equal(t, []string{"Beginner Lesson", "Water Provided"}, ev.Amenities)
}

func TestAssemble_AllAmenitiesInDeclarationOrder(t *testing.T) {
	a := Amenities{true, true, true, true, true, true, true, true}
	assert.Equal(t, []string{
		"Beginner Lesson", "Bar", "Seating", "Air Conditioning",
		"Coat Check", "Water Provided", "Video Allowed", "Parking",
	}, a.Labels())
}

func TestAssemble_RequiredFields(t *testing.T) {
	_, err := Event{}.Assemble()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	for _, f := range []string{
		"title", "description", "date", "start_time", "end_time",
		"location", "address", "type", "level", "capacity", "price",
	} {
		assert.Contains(t, verr.Fields, f)
	}
	assert.NotContains(t, verr.Fields, "pricing_type")
}

func TestAssemble_InvalidValues(t *testing.T) {
	d := sampleDraft()
	d.Type = "classes"
	d.Level = "expert"
	d.Capacity = "-3"
	d.Website = "not a url"

	_, err := d.Assemble()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields["type"], "must be one of")
	assert.Contains(t, verr.Fields["level"], "must be one of")
	assert.Equal(t, "must be a positive whole number", verr.Fields["capacity"])
	assert.Equal(t, "must be a valid URL", verr.Fields["website"])
}

func TestAssemble_NonNumericCapacity(t *testing.T) {
	d := sampleDraft()
	d.Capacity = "lots"

	_, err := d.Assemble()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be a positive whole number", verr.Fields["capacity"])
}

func TestAmenityLabel(t *testing.T) {
	assert.Equal(t, "Air Conditioning", AmenityLabel("airConditioning"))
	assert.Equal(t, "Bar", AmenityLabel("bar"))
	assert.Equal(t, "Video Allowed", AmenityLabel("videoAllowed"))
	assert.Equal(t, "", AmenityLabel(""))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"title": "is required", "address": "is required"}}
	assert.Equal(t, "validation failed: address is required; title is required", err.Error())
}

func sampleProfile() models.UserProfile {
	return models.UserProfile{
		ID:         "user-1",
		Name:       "Jane Dancer",
		Email:      "jane.dancer@example.com",
		Location:   "New York, NY",
		Bio:        "Hustle dancer for 5 years.",
		Experience: models.ExperienceIntermediate,
		Preferences: models.Preferences{
			EmailNotifications:     true,
			NewsletterSubscription: true,
			PublicProfile:          true,
		},
	}
}

func TestProfile_ApplyLeavesOriginal(t *testing.T) {
	base := FromProfile(&models.UserProfile{Name: "A", Email: "a@example.com", Experience: "beginner"})
	name := "B"

	changed := base.Apply(ProfilePatch{Name: &name})

	assert.Equal(t, "A", base.Name)
	assert.Equal(t, "B", changed.Name)
	assert.Equal(t, base.Email, changed.Email)
}

func TestProfile_ApplyPreferencesReplacesAllFlags(t *testing.T) {
	p := sampleProfile()
	d := FromProfile(&p)

	d = d.Apply(ProfilePatch{Preferences: &models.Preferences{SMSNotifications: true}})

	assert.Equal(t, models.Preferences{SMSNotifications: true}, d.Preferences)
}

func TestProfile_Commit(t *testing.T) {
	base := sampleProfile()
	loc := "Brooklyn, NY"
	d := FromProfile(&base).Apply(ProfilePatch{Location: &loc})

	committed, err := d.Commit(base)

	require.NoError(t, err)
	assert.Equal(t, "Brooklyn, NY", committed.Location)
	assert.Equal(t, "user-1", committed.ID)
	assert.Equal(t, "New York, NY", base.Location)
}

func TestProfile_CommitInvalid(t *testing.T) {
	base := sampleProfile()
	email := "not-an-email"
	exp := "guru"
	d := FromProfile(&base).Apply(ProfilePatch{Email: &email, Experience: &exp})

	_, err := d.Commit(base)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Contains(t, verr.Fields["experience"], "must be one of")
}
