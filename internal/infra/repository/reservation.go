package repository

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (sqlc.Reservations, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	ListReservationsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsInWindowParams) ([]sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return r.toDomain(row)
}

func (r *ReservationRepository) Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToUpdateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update reservation", err)
	}
	return r.toDomain(row)
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, reservationID int64) error {
	affected, err := r.queries.DeleteReservation(ctx, tx, reservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindInWindow returns the court's reservations dated within [from, to],
// leaving out excludeID (0 excludes nothing since ids start at 1).
func (r *ReservationRepository) FindInWindow(
	ctx context.Context,
	tx sqlc.DBTX,
	courtID int64,
	from, to reservation.Date,
	excludeID int64,
) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsInWindow(ctx, tx, sqlc.ListReservationsInWindowParams{
		CourtID:   courtID,
		FromDate:  pgconv.DateToPgtype(from.Time()),
		ToDate:    pgconv.DateToPgtype(to.Time()),
		ExcludeID: excludeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations in window", err)
	}

	out, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation rows", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *ReservationRepository) toDomain(row sqlc.Reservations) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}
