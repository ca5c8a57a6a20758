package storage

import "errors"

var (
	// ErrAlreadyExists is returned by PutIfAbsent when the key is taken
	ErrAlreadyExists = errors.New("slot.repository: slot already exists")

	// ErrConditionFailed is returned by CompareAndSet when the key is missing
	// or its availability differs from the expected one
	ErrConditionFailed = errors.New("slot.repository: condition check failed")

	// ErrInvalidSlot is returned for records that break the key or name invariants
	ErrInvalidSlot = errors.New("slot.repository: invalid slot")

	ErrBuildQuery = errors.New("slot.repository: failed to build query")
	ErrExecQuery  = errors.New("slot.repository: failed to execute query")
	ErrScanRow    = errors.New("slot.repository: failed to scan row")
	ErrDecode     = errors.New("slot.repository: failed to decode record")
)
