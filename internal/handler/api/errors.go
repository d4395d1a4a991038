package api

import (
	"net/http"

	"lift-reservation/internal/handler/httperr"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
	code    string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{commands.ErrValidation, http.StatusBadRequest, "Invalid request", httperr.CodeValidation},
	{queries.ErrInvalidQuery, http.StatusBadRequest, "Invalid request", httperr.CodeValidation},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor", httperr.CodeValidation},
	{queries.ErrInvalidTicket, http.StatusUnprocessableEntity, "Ticket is not valid", httperr.CodeInvalidTicket},
	{commands.ErrDuplicateBooking, http.StatusConflict, "Slot already booked by this user", httperr.CodeDuplicateBooking},
	{commands.ErrNoCapacity, http.StatusConflict, "No tickets left for this slot", httperr.CodeNoCapacity},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found", httperr.CodeNotFound},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found", httperr.CodeNotFound},
	{commands.ErrForbidden, http.StatusForbidden, "Access denied", httperr.CodeForbidden},
	{queries.ErrBookingAccess, http.StatusForbidden, "Access denied", httperr.CodeForbidden},
	{commands.ErrStoreUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable", httperr.CodeStoreUnavailable},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, err, m.message, m.code)
			return
		}
	}
	httperr.AbortWithCode(c, http.StatusInternalServerError, err, "Internal error", httperr.CodeInternal)
}
