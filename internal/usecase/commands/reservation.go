package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
)

// ReservationInput carries an already parsed booking request.
type ReservationInput struct {
	CourtID         int64
	Date            reservation.Date
	StartTime       reservation.TimeOfDay
	DurationMinutes int
	ContactName     string
	ContactPhone    string
}

type ReservationCommands interface {
	Create(ctx context.Context, in ReservationInput) (*queries.ReservationView, error)
	Update(ctx context.Context, reservationID int64, in ReservationInput) (*queries.ReservationView, error)
	Delete(ctx context.Context, reservationID int64) error
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, in ReservationInput) (*queries.ReservationView, error) {
	candidate, err := newCandidate(in)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.checkAvailability(ctx, tx, candidate); derr != nil {
			return derr
		}

		res, derr := tx.Reservations().Create(ctx, tx.DB(), candidate)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		now := uc.clock.Now()
		if derr = enqueueEvent(ctx, tx.Notifications(), tx.DB(), TopicReservationCreated, newReservationEvent(res, now), now); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReservationView(created), nil
}

// Update replaces every field of the reservation. The stored record itself is
// ignored by the overlap check, so moving a booking within its own slot is allowed.
func (uc *reservationUseCaseImpl) Update(ctx context.Context, reservationID int64, in ReservationInput) (*queries.ReservationView, error) {
	candidate, err := newCandidate(in)
	if err != nil {
		return nil, err
	}
	candidate = candidate.WithID(reservationID)

	var updated *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ReservationByID(ctx, reservationID); derr != nil {
			return markNotFound(derr, errs.ErrReservationNotFound)
		}
		if derr := uc.checkAvailability(ctx, tx, candidate); derr != nil {
			return derr
		}

		res, derr := tx.Reservations().Update(ctx, tx.DB(), candidate)
		if derr != nil {
			return markNotFound(derr, errs.ErrReservationNotFound)
		}

		now := uc.clock.Now()
		if derr = enqueueEvent(ctx, tx.Notifications(), tx.DB(), TopicReservationUpdated, newReservationEvent(res, now), now); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReservationView(updated), nil
}

func (uc *reservationUseCaseImpl) Delete(ctx context.Context, reservationID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return markNotFound(err, errs.ErrReservationNotFound)
		}

		if err = tx.Reservations().Delete(ctx, tx.DB(), reservationID); err != nil {
			return markNotFound(err, errs.ErrReservationNotFound)
		}

		now := uc.clock.Now()
		event := reservationEvent{
			ReservationID: snap.ID,
			CourtID:       snap.CourtID,
			OccurredAt:    occurredAt(now),
		}
		if err = enqueueEvent(ctx, tx.Notifications(), tx.DB(), TopicReservationDeleted, event, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// checkAvailability serializes writers of the candidate's court, then validates
// the candidate against everything booked on that court around its date.
// The lock is held until the surrounding transaction ends.
func (uc *reservationUseCaseImpl) checkAvailability(ctx context.Context, tx shared.Tx, candidate *reservation.Reservation) error {
	courtID := candidate.CourtID()
	if err := tx.Courts().Lock(ctx, tx.DB(), courtID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if _, err := tx.Reads().CourtByID(ctx, courtID); err != nil {
		return markNotFound(err, errs.ErrCourtNotFound)
	}

	from, to := reservation.OverlapWindow(candidate.Date())
	existing, err := tx.Reservations().FindInWindow(ctx, tx.DB(), courtID, from, to, candidate.ID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err = reservation.EnsureNoOverlap(candidate, existing); err != nil {
		return errs.Mark(err, errs.ErrReservationConflict)
	}
	return nil
}

func newCandidate(in ReservationInput) (*reservation.Reservation, error) {
	res, err := reservation.NewReservation(
		in.CourtID,
		in.Date,
		in.StartTime,
		in.DurationMinutes,
		in.ContactName,
		in.ContactPhone,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return res, nil
}

func toReservationView(res *reservation.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              res.ID(),
		CourtID:         res.CourtID(),
		Date:            res.Date(),
		StartTime:       res.StartTime(),
		DurationMinutes: res.Duration().Minutes(),
		ContactName:     res.Contact().Name(),
		ContactPhone:    res.Contact().Phone(),
		CreatedAt:       res.CreatedAt(),
		UpdatedAt:       res.UpdatedAt(),
	}
}
