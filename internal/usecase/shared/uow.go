package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/reservation"
	sqlc "court-booking/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Courts() CourtRepository
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are lookups a command needs inside its own transaction.
type CommandReads interface {
	CourtByID(ctx context.Context, id int64) (*CourtSnapshot, error)
	ReservationByID(ctx context.Context, id int64) (*ReservationSnapshot, error)
}

type CourtRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *court.Court) (*court.Court, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *court.Court) (*court.Court, error)
	Delete(ctx context.Context, tx sqlc.DBTX, courtID int64) error
	CountReservations(ctx context.Context, tx sqlc.DBTX, courtID int64) (int64, error)
	Lock(ctx context.Context, tx sqlc.DBTX, courtID int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error)
	Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error)
	Delete(ctx context.Context, tx sqlc.DBTX, reservationID int64) error
	FindInWindow(ctx context.Context, tx sqlc.DBTX, courtID int64, from, to reservation.Date, excludeID int64) ([]*reservation.Reservation, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
