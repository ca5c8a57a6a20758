package storage

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// SlotStore is the capability set every backend provides.
// Slots are partitioned by carer and ordered by date_time_slot.
type SlotStore interface {
	// PutIfAbsent writes slot unless its key exists (ErrAlreadyExists).
	PutIfAbsent(ctx context.Context, slot *domain.Slot) error

	// CompareAndSet atomically replaces availability and booking name of key
	// with those of next, provided the stored availability equals expected.
	// Missing key or mismatch yields ErrConditionFailed.
	CompareAndSet(ctx context.Context, key domain.SlotKey, expected domain.Availability, next *domain.Slot) error

	// GetByPartition returns all slots of carerID ordered by date_time_slot.
	GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error)

	// GetByPartitionAndPrefix returns slots of carerID whose date_time_slot
	// starts with prefix, ordered by date_time_slot.
	GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error)

	// ScanAll returns every slot ordered by carer_id, date_time_slot.
	ScanAll(ctx context.Context) ([]*domain.Slot, error)

	Ping(ctx context.Context) error
	Close() error
}

// ValidateForWrite checks the fields every backend relies on.
func ValidateForWrite(slot *domain.Slot) error {
	if slot == nil {
		return fmt.Errorf("%w: nil slot", ErrInvalidSlot)
	}
	if slot.CarerID == "" || slot.Date == "" || slot.TimeSlot == "" {
		return fmt.Errorf("%w: empty key part in %s", ErrInvalidSlot, slot.Key())
	}
	if slot.DateTimeSlot != slot.Key().DateTimeSlot() {
		return fmt.Errorf("%w: date_time_slot %q does not match %s", ErrInvalidSlot, slot.DateTimeSlot, slot.Key())
	}
	if !slot.IsConsistent() {
		return fmt.Errorf("%w: availability %q with booking name set=%t",
			ErrInvalidSlot, slot.Availability, slot.BookingPersonName != nil)
	}
	return nil
}

// ValidateTransition checks that next describes the slot identified by key.
func ValidateTransition(key domain.SlotKey, expected domain.Availability, next *domain.Slot) error {
	if !expected.IsValid() {
		return fmt.Errorf("%w: expected availability %q", ErrInvalidSlot, expected)
	}
	if err := ValidateForWrite(next); err != nil {
		return err
	}
	if next.Key() != key {
		return fmt.Errorf("%w: next slot %s does not match key %s", ErrInvalidSlot, next.Key(), key)
	}
	return nil
}
