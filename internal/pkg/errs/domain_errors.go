package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	// Court errors
	ErrCourtNotFound        = errors.New("court not found")
	ErrCourtHasReservations = errors.New("court has reservations")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("overlapping reservation")
	ErrNoReservationsFound = errors.New("no reservations found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
