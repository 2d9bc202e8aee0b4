package draft

import (
	"strconv"
	"strings"

	"github.com/Eursukkul/hustle-events/internal/models"
)

// Event is the event form as submitted. Numeric inputs arrive as strings,
// the way the form holds them.
type Event struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description" validate:"required"`
	Date           string    `json:"date" validate:"required"`
	StartTime      string    `json:"start_time" validate:"required"`
	EndTime        string    `json:"end_time" validate:"required"`
	Location       string    `json:"location" validate:"required"`
	Address        string    `json:"address" validate:"required"`
	PricingType    string    `json:"pricing_type" validate:"required,oneof=fixed sliding donation free"`
	Price          string    `json:"price" validate:"required_unless=PricingType free"`
	Capacity       string    `json:"capacity" validate:"required"`
	Type           string    `json:"type" validate:"required,oneof=social workshop congress competition other"`
	Level          string    `json:"level" validate:"required,oneof=all beginner intermediate advanced"`
	Website        string    `json:"website" validate:"omitempty,url"`
	Organizer      string    `json:"organizer"`
	OrganizerID    string    `json:"organizer_id"`
	OrganizerImage string    `json:"organizer_image"`
	Image          string    `json:"image"`
	Amenities      Amenities `json:"amenities"`
}

// Normalize trims every text input and applies the form's default pricing type.
func (d *Event) Normalize() {
	for _, s := range []*string{
		&d.Title, &d.Description, &d.Date, &d.StartTime, &d.EndTime, &d.Location,
		&d.Address, &d.PricingType, &d.Price, &d.Capacity, &d.Type, &d.Level,
		&d.Website, &d.Organizer, &d.OrganizerID, &d.OrganizerImage, &d.Image,
	} {
		*s = strings.TrimSpace(*s)
	}
	if d.PricingType == "" {
		d.PricingType = string(models.PricingFixed)
	}
}

// Validate reports every missing or malformed field at once.
func (d *Event) Validate() error {
	verr := &ValidationError{}
	collect(verr, validate.Struct(d))

	if d.Capacity != "" {
		if n, err := strconv.Atoi(d.Capacity); err != nil || n <= 0 {
			verr.add("capacity", "must be a positive whole number")
		}
	}
	return verr.orNil()
}

// Assemble validates the draft and builds the event it describes.
func (d Event) Assemble() (*models.Event, error) {
	d.Normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}

	capacity, _ := strconv.Atoi(d.Capacity)
	pricing := models.PricingType(d.PricingType)

	price := d.Price
	if pricing == models.PricingFree {
		price = models.FreePrice
	}

	return &models.Event{
		Title:          d.Title,
		Description:    d.Description,
		Date:           d.Date,
		Time:           d.StartTime + " - " + d.EndTime,
		Location:       d.Location,
		Address:        d.Address,
		Price:          price,
		PricingType:    pricing,
		Capacity:       capacity,
		Type:           models.EventType(d.Type),
		Level:          models.Level(d.Level),
		Amenities:      d.Amenities.Labels(),
		Organizer:      d.Organizer,
		OrganizerID:    d.OrganizerID,
		OrganizerImage: d.OrganizerImage,
		Image:          d.Image,
		Website:        d.Website,
	}, nil
}
