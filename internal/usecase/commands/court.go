package commands

//go:generate mockgen -source=court.go -destination=../../../tests/mock/commands/court.go -package=commandsmock

import (
	"context"

	"court-booking/internal/domain/court"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"
)

type CourtInput struct {
	Name      string
	IsCovered bool
}

type CourtCommands interface {
	Create(ctx context.Context, in CourtInput) (*queries.CourtView, error)
	Update(ctx context.Context, courtID int64, in CourtInput) (*queries.CourtView, error)
	Delete(ctx context.Context, courtID int64) error
}

type courtUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCourtUseCase(uow shared.UnitOfWork, clk clock.Clock) CourtCommands {
	return &courtUseCaseImpl{uow: uow, clock: clk}
}

func (uc *courtUseCaseImpl) Create(ctx context.Context, in CourtInput) (*queries.CourtView, error) {
	candidate, err := court.NewCourt(in.Name, in.IsCovered)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var created *court.Court
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Courts().Create(ctx, tx.DB(), candidate)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCourtView(created), nil
}

func (uc *courtUseCaseImpl) Update(ctx context.Context, courtID int64, in CourtInput) (*queries.CourtView, error) {
	candidate, err := court.NewCourt(in.Name, in.IsCovered)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var updated *court.Court
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Courts().Update(ctx, tx.DB(), candidate.WithID(courtID))
		if derr != nil {
			return markNotFound(derr, errs.ErrCourtNotFound)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCourtView(updated), nil
}

// Delete refuses to remove a court that still has reservations. The court lock
// keeps a concurrent booking from landing between the count and the delete.
func (uc *courtUseCaseImpl) Delete(ctx context.Context, courtID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Courts().Lock(ctx, tx.DB(), courtID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if _, err := tx.Reads().CourtByID(ctx, courtID); err != nil {
			return markNotFound(err, errs.ErrCourtNotFound)
		}

		n, err := tx.Courts().CountReservations(ctx, tx.DB(), courtID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if n > 0 {
			return errs.Wrapf(errs.ErrCourtHasReservations, "court %d has %d reservations", courtID, n)
		}

		if err := tx.Courts().Delete(ctx, tx.DB(), courtID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrCourtHasReservations)
			}
			return markNotFound(err, errs.ErrCourtNotFound)
		}

		now := uc.clock.Now()
		event := courtEvent{CourtID: courtID, OccurredAt: occurredAt(now)}
		if err := enqueueEvent(ctx, tx.Notifications(), tx.DB(), TopicCourtDeleted, event, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func toCourtView(c *court.Court) *queries.CourtView {
	return &queries.CourtView{
		ID:        c.ID(),
		Name:      c.Name(),
		IsCovered: c.IsCovered(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
