package repository

//go:generate mockgen -source=court.go -destination=../../../tests/mock/repository/court.go -package=repositorymock

import (
	"context"

	"court-booking/internal/domain/court"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
)

type CourtWriteQueries interface {
	CreateCourt(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCourtParams) (sqlc.Courts, error)
	UpdateCourt(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCourtParams) (sqlc.Courts, error)
	DeleteCourt(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	CountReservationsByCourt(ctx context.Context, db sqlc.DBTX, courtID int64) (int64, error)
	LockCourt(ctx context.Context, db sqlc.DBTX, courtID int64) error
}

type CourtRepository struct {
	queries CourtWriteQueries
	db      sqlc.DBTX
}

func NewCourtRepository(queries CourtWriteQueries, db sqlc.DBTX) *CourtRepository {
	return &CourtRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CourtRepository) Create(ctx context.Context, tx sqlc.DBTX, c *court.Court) (*court.Court, error) {
	row, err := r.queries.CreateCourt(ctx, tx, sqlc.CreateCourtParams{
		Name:      c.Name(),
		IsCovered: c.IsCovered(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create court", err)
	}
	return converter.CourtFromRow(row), nil
}

// Update replaces name and cover flag of c.ID(). A missing row yields KindNotFound.
func (r *CourtRepository) Update(ctx context.Context, tx sqlc.DBTX, c *court.Court) (*court.Court, error) {
	row, err := r.queries.UpdateCourt(ctx, tx, sqlc.UpdateCourtParams{
		ID:        c.ID(),
		Name:      c.Name(),
		IsCovered: c.IsCovered(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update court", err)
	}
	return converter.CourtFromRow(row), nil
}

func (r *CourtRepository) Delete(ctx context.Context, tx sqlc.DBTX, courtID int64) error {
	affected, err := r.queries.DeleteCourt(ctx, tx, courtID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete court", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourtRepository) CountReservations(ctx context.Context, tx sqlc.DBTX, courtID int64) (int64, error) {
	n, err := r.queries.CountReservationsByCourt(ctx, tx, courtID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count court reservations", err)
	}
	return n, nil
}

// Lock takes the transaction-scoped advisory lock of a court. Every writer that
// validates against a court's reservations must hold it until commit.
func (r *CourtRepository) Lock(ctx context.Context, tx sqlc.DBTX, courtID int64) error {
	if err := r.queries.LockCourt(ctx, tx, courtID); err != nil {
		return infra.WrapRepoErr("failed to lock court", err)
	}
	return nil
}
