package request

import (
	"court-booking/internal/domain/reservation"
	"court-booking/internal/usecase/commands"
)

// ReservationRequest is the body of both create and full update.
type ReservationRequest struct {
	CourtID         int64  `json:"court_id" binding:"required,gt=0"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	ContactName     string `json:"contact_name" binding:"required,max=255"`
	ContactPhone    string `json:"contact_phone" binding:"required,max=32"`
}

// ToInput parses the wire formats; range and content checks stay in the domain.
func (r *ReservationRequest) ToInput() (commands.ReservationInput, error) {
	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return commands.ReservationInput{}, err
	}
	start, err := reservation.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.ReservationInput{}, err
	}

	return commands.ReservationInput{
		CourtID:         r.CourtID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: r.DurationMinutes,
		ContactName:     r.ContactName,
		ContactPhone:    r.ContactPhone,
	}, nil
}

// CourtDateQuery selects one court's reservations on one day.
type CourtDateQuery struct {
	CourtID int64  `form:"cancha_id" binding:"required,gt=0"`
	Date    string `form:"fecha" binding:"required"`
}

func (q *CourtDateQuery) ParseDate() (reservation.Date, error) {
	return reservation.ParseDate(q.Date)
}
