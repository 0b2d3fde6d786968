//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/court"
	reqdto "court-booking/internal/handler/dto/request"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CourtBuilder struct {
	ID        int64
	Name      string
	IsCovered bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCourtBuilder() *CourtBuilder {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &CourtBuilder{
		ID:        1,
		Name:      "Cancha Central",
		IsCovered: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *CourtBuilder) With(mutate func(*CourtBuilder)) *CourtBuilder {
	mutate(b)
	return b
}

func (b *CourtBuilder) WithID(id int64) *CourtBuilder {
	b.ID = id
	return b
}

func (b *CourtBuilder) WithName(name string) *CourtBuilder {
	b.Name = name
	return b
}

func (b *CourtBuilder) WithCovered(covered bool) *CourtBuilder {
	b.IsCovered = covered
	return b
}

// Build methods
func (b *CourtBuilder) BuildDomain() (*court.Court, error) {
	return court.NewCourt(b.Name, b.IsCovered)
}

func (b *CourtBuilder) BuildStored() *court.Court {
	return court.ReconstructCourt(b.ID, b.Name, b.IsCovered, b.CreatedAt, b.UpdatedAt)
}

func (b *CourtBuilder) BuildInfra() sqlc.Courts {
	return sqlc.Courts{
		ID:        b.ID,
		Name:      b.Name,
		IsCovered: b.IsCovered,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *CourtBuilder) BuildView() queries.CourtView {
	return queries.CourtView{
		ID:        b.ID,
		Name:      b.Name,
		IsCovered: b.IsCovered,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *CourtBuilder) BuildRequestDTO() reqdto.CourtRequest {
	return reqdto.CourtRequest{
		Name:      b.Name,
		IsCovered: b.IsCovered,
	}
}
