package readstore

import (
	"context"

	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
)

type CourtViewQueries interface {
	GetCourtByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Courts, error)
	ListCourts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Courts, error)
}

type CourtReadStore struct {
	queries CourtViewQueries
	db      sqlc.DBTX
}

func NewCourtReadStore(queries CourtViewQueries, db sqlc.DBTX) *CourtReadStore {
	return &CourtReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CourtReadStore) FindByID(ctx context.Context, id int64) (*queries.CourtView, error) {
	row, err := r.queries.GetCourtByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return toCourtView(row), nil
}

func (r *CourtReadStore) List(ctx context.Context) ([]*queries.CourtView, error) {
	rows, err := r.queries.ListCourts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}

	result := make([]*queries.CourtView, len(rows))
	for i, row := range rows {
		result[i] = toCourtView(row)
	}
	return result, nil
}

func toCourtView(row sqlc.Courts) *queries.CourtView {
	return &queries.CourtView{
		ID:        row.ID,
		Name:      row.Name,
		IsCovered: row.IsCovered,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
