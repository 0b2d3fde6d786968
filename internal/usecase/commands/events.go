package commands

import (
	"context"
	"encoding/json"
	"time"

	"court-booking/internal/domain/reservation"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/usecase/shared"
)

const (
	jobKindEvent = "event"

	TopicReservationCreated = "reservation.created"
	TopicReservationUpdated = "reservation.updated"
	TopicReservationDeleted = "reservation.deleted"
	TopicCourtDeleted       = "court.deleted"
)

type reservationEvent struct {
	ReservationID   int64  `json:"reservation_id"`
	CourtID         int64  `json:"court_id"`
	Date            string `json:"date,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	OccurredAt      string `json:"occurred_at"`
}

type courtEvent struct {
	CourtID    int64  `json:"court_id"`
	OccurredAt string `json:"occurred_at"`
}

func newReservationEvent(res *reservation.Reservation, now time.Time) reservationEvent {
	return reservationEvent{
		ReservationID:   res.ID(),
		CourtID:         res.CourtID(),
		Date:            res.Date().String(),
		StartTime:       res.StartTime().String(),
		DurationMinutes: res.Duration().Minutes(),
		OccurredAt:      occurredAt(now),
	}
}

func occurredAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// enqueueEvent writes an outbox row in the caller's transaction, so the event
// exists if and only if the change commits.
func enqueueEvent(ctx context.Context, repo shared.NotificationRepository, tx sqlc.DBTX, topic string, event any, now time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return repo.CreateJob(ctx, tx, jobKindEvent, topic, payload, now)
}
