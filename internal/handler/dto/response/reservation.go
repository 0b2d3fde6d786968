package response

import (
	"time"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/usecase/queries"
)

type ReservationResponse struct {
	ID              int64     `json:"id"`
	CourtID         int64     `json:"court_id"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	ContactName     string    `json:"contact_name"`
	ContactPhone    string    `json:"contact_phone"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		CourtID:         v.CourtID,
		Date:            v.Date.String(),
		StartTime:       v.StartTime.String(),
		EndTime:         v.EndsAt().Format(reservation.TimeOfDayLayout),
		DurationMinutes: v.DurationMinutes,
		ContactName:     v.ContactName,
		ContactPhone:    v.ContactPhone,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}
