package get_availability

import "errors"

var (
	// ErrInvalidInput is returned for malformed filters
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal is returned when the store cannot be reached
	ErrInternal = errors.New("get_availability: internal error")
)
