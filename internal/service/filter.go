package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/Eursukkul/hustle-events/internal/draft"
	"github.com/Eursukkul/hustle-events/internal/models"
)

const (
	DateToday     = "today"
	DateThisWeek  = "this-week"
	DateThisMonth = "this-month"
	DateNextMonth = "next-month"

	PriceFree     = "free"
	PricePaid     = "paid"
	PriceDonation = "donation"
)

// Filter narrows the catalog. Empty fields match everything.
type Filter struct {
	Location string `query:"location"`
	Date     string `query:"date"`
	Type     string `query:"type"`
	Price    string `query:"price"`
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

func (f Filter) Validate() error {
	verr := &draft.ValidationError{Fields: map[string]string{}}
	switch f.Date {
	case "", DateToday, DateThisWeek, DateThisMonth, DateNextMonth:
	default:
		verr.Fields["date"] = "must be one of: today, this-week, this-month, next-month"
	}
	switch f.Price {
	case "", PriceFree, PricePaid, PriceDonation:
	default:
		verr.Fields["price"] = "must be one of: free, paid, donation"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Match reports whether e passes every set criterion. now anchors the date
// buckets.
func (f Filter) Match(e *models.Event, now time.Time) bool {
	return f.matchLocation(e) && f.matchDate(e, now) && f.matchType(e) && f.matchPrice(e)
}

func (f Filter) matchLocation(e *models.Event) bool {
	if f.Location == "" {
		return true
	}
	place := strings.ToLower(strings.ReplaceAll(f.Location, "-", " "))
	return strings.Contains(strings.ToLower(e.Address), place) ||
		strings.Contains(strings.ToLower(e.Location), place)
}

func (f Filter) matchType(e *models.Event) bool {
	return f.Type == "" || string(e.Type) == f.Type
}

func (f Filter) matchPrice(e *models.Event) bool {
	switch f.Price {
	case "":
		return true
	case PriceFree:
		return e.IsFree()
	case PricePaid:
		return !e.IsFree() && (e.PricingType == models.PricingFixed || e.PricingType == models.PricingSliding)
	case PriceDonation:
		return e.PricingType == models.PricingDonation
	}
	return false
}

func (f Filter) matchDate(e *models.Event, now time.Time) bool {
	if f.Date == "" {
		return true
	}
	day, ok := ParseEventDate(e.Date, now.Location())
	if !ok {
		return false
	}
	today := truncateDay(now)

	switch f.Date {
	case DateToday:
		return day.Equal(today)
	case DateThisWeek:
		start := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		return !day.Before(start) && day.Before(start.AddDate(0, 0, 7))
	case DateThisMonth:
		return day.Year() == today.Year() && day.Month() == today.Month()
	case DateNextMonth:
		next := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
		return day.Year() == next.Year() && day.Month() == next.Month()
	}
	return false
}

var dateRange = regexp.MustCompile(`^([A-Za-z]+)\.? (\d{1,2})(?:\s*-\s*\d{1,2})?,? (\d{4})$`)

// ParseEventDate reads a display date such as "June 25, 2025", the first day
// of a range such as "July 15-17, 2025", or an ISO "2025-07-15".
func ParseEventDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, true
	}

	m := dateRange.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	norm := m[1] + " " + m[2] + " " + m[3]
	for _, layout := range []string{"January 2 2006", "Jan 2 2006"} {
		if t, err := time.ParseInLocation(layout, norm, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
