package queries

import (
	"time"

	"court-booking/internal/domain/reservation"
)

// CourtView is the read model of a court.
type CourtView struct {
	ID        int64
	Name      string
	IsCovered bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationView keeps date and time typed; formatting happens in the response DTO.
type ReservationView struct {
	ID              int64
	CourtID         int64
	Date            reservation.Date
	StartTime       reservation.TimeOfDay
	DurationMinutes int
	ContactName     string
	ContactPhone    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EndsAt is the exclusive end of the booked interval.
func (v *ReservationView) EndsAt() time.Time {
	return v.Date.At(v.StartTime).Add(time.Duration(v.DurationMinutes) * time.Minute)
}
