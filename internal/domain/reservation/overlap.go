package reservation

import (
	"errors"
	"time"

	"court-booking/internal/pkg/errs"
)

var ErrOverlappingReservation = errors.New("reservation overlaps an existing reservation")

// Interval is the half-open range [start, end) a reservation occupies.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(date Date, startTime TimeOfDay, duration Duration) Interval {
	start := date.At(startTime)
	return Interval{start: start, end: start.Add(duration.Std())}
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

// Overlaps treats touching endpoints as free: [10:00,11:00) and [11:00,12:00) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.start.Before(o.end) && o.start.Before(i.end)
}

// OverlapWindow is the inclusive date range that can hold reservations conflicting with
// one on d. A reservation lasts at most a day, so it can only spill into the next date.
func OverlapWindow(d Date) (from, to Date) {
	return d.AddDays(-1), d.AddDays(1)
}

// FindConflict returns the first stored reservation on the candidate's court whose interval
// intersects the candidate. The candidate itself is skipped when it already has an ID.
func FindConflict(candidate *Reservation, existing []*Reservation) *Reservation {
	want := candidate.Interval()
	for _, other := range existing {
		if other.CourtID() != candidate.CourtID() {
			continue
		}
		if candidate.ID() != 0 && other.ID() == candidate.ID() {
			continue
		}
		if want.Overlaps(other.Interval()) {
			return other
		}
	}
	return nil
}

func EnsureNoOverlap(candidate *Reservation, existing []*Reservation) error {
	conflict := FindConflict(candidate, existing)
	if conflict == nil {
		return nil
	}
	return errs.Wrapf(ErrOverlappingReservation,
		"conflicts with reservation %d (%s %s, %d min)",
		conflict.ID(), conflict.Date(), conflict.StartTime(), conflict.Duration().Minutes())
}
