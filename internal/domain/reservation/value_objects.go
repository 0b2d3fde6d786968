package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"

	MinDurationMinutes = 1
	// One day at most, so a reservation can never reach past the day after it starts.
	MaxDurationMinutes = 24 * 60

	MaxContactNameLength  = 255
	MinContactPhoneDigits = 6
	MaxContactPhoneLength = 32
)

var (
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimeOfDay     = errors.New("invalid start time, expected HH:MM")
	ErrInvalidDuration      = fmt.Errorf("duration must be between %d and %d minutes", MinDurationMinutes, MaxDurationMinutes)
	ErrEmptyContactName     = errors.New("contact name cannot be empty")
	ErrContactNameTooLong   = errors.New("contact name is too long (max 255 characters)")
	ErrInvalidContactPhone  = errors.New("invalid contact phone")
	ErrInvalidCourtID       = errors.New("court id must be positive")
	ErrInvalidReservationID = errors.New("reservation id must be positive")
)

// Date is a calendar day without time zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part and zone of t.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// At combines the date with a time of day into an instant on the naive UTC timeline.
func (d Date) At(t TimeOfDay) time.Time {
	return d.t.Add(time.Duration(t.minutes) * time.Minute)
}

// TimeOfDay is a local wall-clock time with minute granularity.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// TimeOfDayFromMinutes accepts minutes since midnight.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= 24*60 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int    { return t.minutes / 60 }
func (t TimeOfDay) Minute() int  { return t.minutes % 60 }
func (t TimeOfDay) Minutes() int { return t.minutes }
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

type Duration struct {
	minutes int
}

func NewDuration(minutes int) (Duration, error) {
	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{minutes: minutes}, nil
}

func (d Duration) Minutes() int { return d.minutes }
func (d Duration) Std() time.Duration {
	return time.Duration(d.minutes) * time.Minute
}

// Contact holds who booked the court. The phone is a single free-form field.
type Contact struct {
	name  string
	phone string
}

func NewContact(name, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyContactName
	}
	if utf8.RuneCountInString(name) > MaxContactNameLength {
		return Contact{}, ErrContactNameTooLong
	}

	phone = strings.TrimSpace(phone)
	if err := validatePhone(phone); err != nil {
		return Contact{}, err
	}

	return Contact{name: name, phone: phone}, nil
}

// ReconstructContact restores a stored contact without validation.
func ReconstructContact(name, phone string) Contact {
	return Contact{name: name, phone: phone}
}

func validatePhone(phone string) error {
	if len(phone) > MaxContactPhoneLength {
		return ErrInvalidContactPhone
	}
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '(', r == ')':
		default:
			return ErrInvalidContactPhone
		}
	}
	if digits < MinContactPhoneDigits {
		return ErrInvalidContactPhone
	}
	return nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
