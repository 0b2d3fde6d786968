package queries

//go:generate mockgen -source=court.go -destination=../../../tests/mock/queries/court.go -package=queriesmock

import (
	"context"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
)

type CourtReadStore interface {
	FindByID(ctx context.Context, id int64) (*CourtView, error)
	List(ctx context.Context) ([]*CourtView, error)
}

type CourtQueries interface {
	GetByID(ctx context.Context, id int64) (*CourtView, error)
	List(ctx context.Context) ([]*CourtView, error)
	ListReservations(ctx context.Context, courtID int64) ([]*ReservationView, error)
}

type courtQueriesImpl struct {
	courts       CourtReadStore
	reservations ReservationReadStore
}

func NewCourtQueries(courts CourtReadStore, reservations ReservationReadStore) CourtQueries {
	return &courtQueriesImpl{courts: courts, reservations: reservations}
}

func (q *courtQueriesImpl) GetByID(ctx context.Context, id int64) (*CourtView, error) {
	c, err := q.courts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCourtNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (q *courtQueriesImpl) List(ctx context.Context) ([]*CourtView, error) {
	courts, err := q.courts.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return courts, nil
}

// ListReservations returns the court's bookings by date and start time.
// An existing court with no bookings yields an empty slice.
func (q *courtQueriesImpl) ListReservations(ctx context.Context, courtID int64) ([]*ReservationView, error) {
	if _, err := q.GetByID(ctx, courtID); err != nil {
		return nil, err
	}
	rows, err := q.reservations.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
