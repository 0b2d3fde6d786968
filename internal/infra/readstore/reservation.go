package readstore

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reservations, error)
	ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Reservations, error)
	ListReservationsByCourt(ctx context.Context, db sqlc.DBTX, courtID int64) ([]sqlc.Reservations, error)
	ListReservationsByCourtAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByCourtAndDateParams) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	view, err := toReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map reservation row", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return toReservationViews(rows)
}

func (r *ReservationReadStore) ListByCourt(ctx context.Context, courtID int64) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByCourt(ctx, r.db, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by court", err)
	}
	return toReservationViews(rows)
}

func (r *ReservationReadStore) ListByCourtAndDate(ctx context.Context, courtID int64, date reservation.Date) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsByCourtAndDateParams{
		CourtID:         courtID,
		ReservationDate: pgconv.DateToPgtype(date.Time()),
	}
	rows, err := r.queries.ListReservationsByCourtAndDate(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by court and date", err)
	}
	return toReservationViews(rows)
}

func toReservationViews(rows []sqlc.Reservations) ([]*queries.ReservationView, error) {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		view, err := toReservationView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map reservation row", err, infra.KindDBFailure)
		}
		result[i] = view
	}
	return result, nil
}

func toReservationView(row sqlc.Reservations) (*queries.ReservationView, error) {
	date, err := pgconv.DateFromPgtype(row.ReservationDate)
	if err != nil {
		return nil, err
	}
	minutes, err := pgconv.MinutesFromPgTime(row.StartTime)
	if err != nil {
		return nil, err
	}
	start, err := reservation.TimeOfDayFromMinutes(minutes)
	if err != nil {
		return nil, err
	}

	return &queries.ReservationView{
		ID:              row.ID,
		CourtID:         row.CourtID,
		Date:            reservation.DateOf(date),
		StartTime:       start,
		DurationMinutes: int(row.DurationMinutes),
		ContactName:     row.ContactName,
		ContactPhone:    row.ContactPhone,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
