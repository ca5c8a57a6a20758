package slots

import "errors"

var (
	// ErrNoActiveBooking is returned by Cancel when the slot is not Booked
	ErrNoActiveBooking = errors.New("no booking found for this time slot")

	// ErrSlotNotFound is returned when the key is outside the catalogue
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidInput is returned for empty or malformed fields
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned when the store cannot be reached
	ErrInternal = errors.New("service: internal error")
)
