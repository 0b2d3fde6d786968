package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
	ListByCourt(ctx context.Context, courtID int64) ([]*ReservationView, error)
	ListByCourtAndDate(ctx context.Context, courtID int64, date reservation.Date) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
	ListByCourtAndDate(ctx context.Context, courtID int64, date reservation.Date) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rv, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	rows, err := q.repo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}

// ListByCourtAndDate reports ErrNoReservationsFound instead of an empty list;
// existing clients rely on the 404 it maps to.
func (q *reservationQueriesImpl) ListByCourtAndDate(ctx context.Context, courtID int64, date reservation.Date) ([]*ReservationView, error) {
	rows, err := q.repo.ListByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(rows) == 0 {
		return nil, errs.ErrNoReservationsFound
	}
	return rows, nil
}
