package api

import (
	"net/http"
	"strconv"

	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use case sentinels to HTTP statuses.
// Unknown errors become a 500 whose details only reach the log.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrCourtNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrNoReservationsFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No reservations found", nil)
	case errs.Is(err, errs.ErrReservationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation overlaps an existing reservation", err.Error())
	case errs.Is(err, errs.ErrCourtHasReservations):
		httperr.AbortWithError(c, http.StatusConflict, err, "Court has reservations", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.Newf("non-positive id %d", id)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
