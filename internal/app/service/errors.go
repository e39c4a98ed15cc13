package service

import (
	"net/http"

	"github.com/tripdesk/fareview-service/internal/pkg/exception"
)

// ErrBookingNotFound maps a missing storage key to the confirmation
// screen's "no confirmation found" state.
var ErrBookingNotFound = exception.ApplicationError{
	Message:    "no confirmation found",
	StatusCode: http.StatusNotFound,
}

// ErrBookingLocked reports a concurrent PNR edit on the same booking.
var ErrBookingLocked = exception.ApplicationError{
	Message:    "booking is being updated, try again",
	StatusCode: http.StatusConflict,
}

var ErrNoAirportsFound = exception.ApplicationError{
	Message:    "no airports found",
	StatusCode: http.StatusNotFound,
}
