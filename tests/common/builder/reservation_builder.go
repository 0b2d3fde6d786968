//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/reservation"
	reqdto "court-booking/internal/handler/dto/request"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationBuilder keeps date and start time in wire format; Build methods parse them.
type ReservationBuilder struct {
	ID              int64
	CourtID         int64
	Date            string
	StartTime       string
	DurationMinutes int
	ContactName     string
	ContactPhone    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:              1,
		CourtID:         1,
		Date:            "2024-05-10",
		StartTime:       "10:00",
		DurationMinutes: 60,
		ContactName:     "Juan Perez",
		ContactPhone:    "+54 11 4444-5555",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithCourtID(id int64) *ReservationBuilder {
	b.CourtID = id
	return b
}

// WithSlot sets date (YYYY-MM-DD), start (HH:MM) and length in minutes.
func (b *ReservationBuilder) WithSlot(date, start string, minutes int) *ReservationBuilder {
	b.Date = date
	b.StartTime = start
	b.DurationMinutes = minutes
	return b
}

func (b *ReservationBuilder) WithContact(name, phone string) *ReservationBuilder {
	b.ContactName = name
	b.ContactPhone = phone
	return b
}

func (b *ReservationBuilder) mustDate() reservation.Date {
	d, err := reservation.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	return d
}

func (b *ReservationBuilder) mustStart() reservation.TimeOfDay {
	t, err := reservation.ParseTimeOfDay(b.StartTime)
	if err != nil {
		panic(err)
	}
	return t
}

// Build methods

// BuildDomain runs the domain validation, as a new candidate would.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(b.CourtID, b.mustDate(), b.mustStart(), b.DurationMinutes, b.ContactName, b.ContactPhone)
}

// BuildStored returns a reservation as loaded from storage, with its ID.
func (b *ReservationBuilder) BuildStored() *reservation.Reservation {
	duration, err := reservation.NewDuration(b.DurationMinutes)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		b.ID, b.CourtID, b.mustDate(), b.mustStart(), duration,
		reservation.ReconstructContact(b.ContactName, b.ContactPhone),
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:              b.ID,
		CourtID:         b.CourtID,
		ReservationDate: pgconv.DateToPgtype(b.mustDate().Time()),
		StartTime:       pgconv.MinutesToPgTime(b.mustStart().Minutes()),
		DurationMinutes: int32(b.DurationMinutes),
		ContactName:     b.ContactName,
		ContactPhone:    b.ContactPhone,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() queries.ReservationView {
	return queries.ReservationView{
		ID:              b.ID,
		CourtID:         b.CourtID,
		Date:            b.mustDate(),
		StartTime:       b.mustStart(),
		DurationMinutes: b.DurationMinutes,
		ContactName:     b.ContactName,
		ContactPhone:    b.ContactPhone,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildInput() commands.ReservationInput {
	return commands.ReservationInput{
		CourtID:         b.CourtID,
		Date:            b.mustDate(),
		StartTime:       b.mustStart(),
		DurationMinutes: b.DurationMinutes,
		ContactName:     b.ContactName,
		ContactPhone:    b.ContactPhone,
	}
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{
		CourtID:         b.CourtID,
		Date:            b.Date,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		ContactName:     b.ContactName,
		ContactPhone:    b.ContactPhone,
	}
}
