package converter

import (
	"court-booking/internal/domain/court"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
)

func CourtFromRow(row sqlc.Courts) *court.Court {
	return court.ReconstructCourt(
		row.ID,
		row.Name,
		row.IsCovered,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
