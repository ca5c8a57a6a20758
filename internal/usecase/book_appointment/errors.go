package book_appointment

import "errors"

var (
	// ErrInvalidInput is returned when a required field is empty or malformed
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrSlotUnavailable is returned when the slot is already booked or does not exist
	ErrSlotUnavailable = errors.New("book_appointment: slot is already booked or does not exist")

	// ErrInternal is returned when the store cannot be reached
	ErrInternal = errors.New("book_appointment: internal error")
)
