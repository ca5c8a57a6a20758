package careslotsapi

import "errors"

var (
	// ErrSlotUnavailable is returned when booking a slot that is booked or unknown.
	ErrSlotUnavailable = errors.New("careslots client: slot unavailable")

	// ErrNoActiveBooking is returned when cancelling a slot that is not booked.
	ErrNoActiveBooking = errors.New("careslots client: no active booking")

	// ErrBadRequest is returned when the server rejects the input.
	ErrBadRequest = errors.New("careslots client: bad request")

	ErrInternal        = errors.New("careslots client: internal error")
	ErrInvalidResponse = errors.New("careslots client: invalid response")
)
