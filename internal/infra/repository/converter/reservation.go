package converter

import (
	"fmt"

	"court-booking/internal/domain/reservation"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		CourtID:         res.CourtID(),
		ReservationDate: pgconv.DateToPgtype(res.Date().Time()),
		StartTime:       pgconv.MinutesToPgTime(res.StartTime().Minutes()),
		DurationMinutes: int32(res.Duration().Minutes()), // #nosec G115 -- bounded by MaxDurationMinutes
		ContactName:     res.Contact().Name(),
		ContactPhone:    res.Contact().Phone(),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	p := ReservationToCreateParams(res)
	return sqlc.UpdateReservationParams{
		ID:              res.ID(),
		CourtID:         p.CourtID,
		ReservationDate: p.ReservationDate,
		StartTime:       p.StartTime,
		DurationMinutes: p.DurationMinutes,
		ContactName:     p.ContactName,
		ContactPhone:    p.ContactPhone,
	}
}

// ReservationFromRow rebuilds the domain entity without re-running input validation,
// since rows were validated on the way in and are guarded by CHECK constraints.
func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	date, err := pgconv.DateFromPgtype(row.ReservationDate)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: %w", row.ID, err)
	}
	minutes, err := pgconv.MinutesFromPgTime(row.StartTime)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: %w", row.ID, err)
	}
	start, err := reservation.TimeOfDayFromMinutes(minutes)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: %w", row.ID, err)
	}
	duration, err := reservation.NewDuration(int(row.DurationMinutes))
	if err != nil {
		return nil, fmt.Errorf("reservation %d: %w", row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.CourtID,
		reservation.DateOf(date),
		start,
		duration,
		reservation.ReconstructContact(row.ContactName, row.ContactPhone),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsFromRows(rows []sqlc.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
