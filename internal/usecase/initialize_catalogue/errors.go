package initialize_catalogue

import "errors"

var (
	// ErrInvalidCatalogue is returned when the catalogue parameters are unusable
	ErrInvalidCatalogue = errors.New("initialize_catalogue: invalid catalogue")

	// ErrInternal is returned when at least one write failed
	ErrInternal = errors.New("initialize_catalogue: internal error")
)
