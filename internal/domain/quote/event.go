package quote

import (
	"errors"
	"time"
)

var (
	ErrDateInPast       = errors.New("event date cannot be in the past")
	ErrLocationTooShort = errors.New("location must be at least 3 characters")
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidGuests    = errors.New("guest count must be between 10 and 1000")
)

const (
	MinLocationLength = 3
	MinGuestCount     = 10
	MaxGuestCount     = 1000
)

type EventType string

const (
	EventWedding   EventType = "wedding"
	EventCorporate EventType = "corporate"
	EventParty     EventType = "party"
	EventConcert   EventType = "concert"
	EventOther     EventType = "other"
)

func (t EventType) String() string {
	return string(t)
}

func (t EventType) IsValid() bool {
	switch t {
	case EventWedding, EventCorporate, EventParty, EventConcert, EventOther:
		return true
	default:
		return false
	}
}

// Date is a calendar date without a time component. It marshals as
// "2006-01-02" so a stored draft revives the same calendar day
// regardless of server timezone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

type EventDetails struct {
	date       Date
	location   string
	eventType  EventType
	guestCount int
}

// NewEventDetails validates step-1 input. The today argument comes from
// the caller's clock so the today-or-future rule stays testable.
func NewEventDetails(date Date, location string, eventType EventType, guestCount int, today Date) (EventDetails, error) {
	if date.Before(today) {
		return EventDetails{}, ErrDateInPast
	}
	if len(location) < MinLocationLength {
		return EventDetails{}, ErrLocationTooShort
	}
	if !eventType.IsValid() {
		return EventDetails{}, ErrInvalidEventType
	}
	if guestCount < MinGuestCount || guestCount > MaxGuestCount {
		return EventDetails{}, ErrInvalidGuests
	}

	return EventDetails{
		date:       date,
		location:   location,
		eventType:  eventType,
		guestCount: guestCount,
	}, nil
}

// ReconstructEventDetails rebuilds an already-validated value from storage.
func ReconstructEventDetails(date Date, location string, eventType EventType, guestCount int) EventDetails {
	return EventDetails{
		date:       date,
		location:   location,
		eventType:  eventType,
		guestCount: guestCount,
	}
}

func (e EventDetails) Date() Date           { return e.date }
func (e EventDetails) Location() string     { return e.location }
func (e EventDetails) EventType() EventType { return e.eventType }
func (e EventDetails) GuestCount() int      { return e.guestCount }
