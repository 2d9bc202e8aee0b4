package draft

import (
	"strings"
	"unicode"
)

// Amenities are the checkbox flags offered by the event form. Field order is
// the order labels are produced in.
type Amenities struct {
	BeginnerLesson  bool `json:"beginnerLesson"`
	Bar             bool `json:"bar"`
	Seating         bool `json:"seating"`
	AirConditioning bool `json:"airConditioning"`
	CoatCheck       bool `json:"coatCheck"`
	WaterProvided   bool `json:"waterProvided"`
	VideoAllowed    bool `json:"videoAllowed"`
	Parking         bool `json:"parking"`
}

type amenityFlag struct {
	id  string
	set bool
}

func (a Amenities) flags() []amenityFlag {
	return []amenityFlag{
		{"beginnerLesson", a.BeginnerLesson},
		{"bar", a.Bar},
		{"seating", a.Seating},
		{"airConditioning", a.AirConditioning},
		{"coatCheck", a.CoatCheck},
		{"waterProvided", a.WaterProvided},
		{"videoAllowed", a.VideoAllowed},
		{"parking", a.Parking},
	}
}

// Labels returns the display label of every flag that is set.
func (a Amenities) Labels() []string {
	labels := make([]string, 0, 8)
	for _, f := range a.flags() {
		if f.set {
			labels = append(labels, AmenityLabel(f.id))
		}
	}
	return labels
}

// AmenityLabel turns a camelCase flag id into words with a leading capital:
// "airConditioning" becomes "Air Conditioning".
func AmenityLabel(id string) string {
	var b strings.Builder
	for i, r := range id {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
