package commands

import (
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
)

// markNotFound tags repository misses with the caller's sentinel and every other
// failure as a database failure.
func markNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
