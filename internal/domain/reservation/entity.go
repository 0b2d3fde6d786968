package reservation

import (
	"time"
)

type Reservation struct {
	id        int64
	courtID   int64
	date      Date
	startTime TimeOfDay
	duration  Duration
	contact   Contact
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a candidate that has not been stored yet; its ID is zero.
func NewReservation(
	courtID int64,
	date Date,
	startTime TimeOfDay,
	durationMinutes int,
	contactName, contactPhone string,
) (*Reservation, error) {
	if courtID <= 0 {
		return nil, ErrInvalidCourtID
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	duration, err := NewDuration(durationMinutes)
	if err != nil {
		return nil, err
	}

	contact, err := NewContact(contactName, contactPhone)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		courtID:   courtID,
		date:      date,
		startTime: startTime,
		duration:  duration,
		contact:   contact,
	}, nil
}

func ReconstructReservation(
	id, courtID int64,
	date Date,
	startTime TimeOfDay,
	duration Duration,
	contact Contact,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		courtID:   courtID,
		date:      date,
		startTime: startTime,
		duration:  duration,
		contact:   contact,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// WithID returns a copy bound to an existing record, used for full replacement on update.
func (r *Reservation) WithID(id int64) *Reservation {
	cp := *r
	cp.id = id
	return &cp
}

func (r *Reservation) Interval() Interval {
	return NewInterval(r.date, r.startTime, r.duration)
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) CourtID() int64       { return r.courtID }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) StartTime() TimeOfDay { return r.startTime }
func (r *Reservation) Duration() Duration   { return r.duration }
func (r *Reservation) Contact() Contact     { return r.contact }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
