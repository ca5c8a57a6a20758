package redisstore

import (
	"fmt"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/pkg/ptr"
)

const (
	fieldCarerID      = "carer_id"
	fieldDateTimeSlot = "date_time_slot"
	fieldDate         = "date"
	fieldTimeSlot     = "time_slot"
	fieldAvailability = "availability"
	fieldPersonName   = "booking_person_name"
)

// hashToSlot decodes an HGETALL reply. An empty map means the key is gone.
func hashToSlot(hash map[string]string) (*domain.Slot, error) {
	slot := &domain.Slot{
		CarerID:      hash[fieldCarerID],
		DateTimeSlot: hash[fieldDateTimeSlot],
		Date:         hash[fieldDate],
		TimeSlot:     hash[fieldTimeSlot],
		Availability: domain.Availability(hash[fieldAvailability]),
	}
	if name, ok := hash[fieldPersonName]; ok {
		slot.BookingPersonName = ptr.Ptr(name)
	}

	if slot.CarerID == "" || slot.DateTimeSlot == "" {
		return nil, fmt.Errorf("%w: hash is missing key fields", storage.ErrDecode)
	}
	if !slot.Availability.IsValid() {
		return nil, fmt.Errorf("%w: availability %q", storage.ErrDecode, slot.Availability)
	}
	return slot, nil
}

// nameArgs encodes an optional name as (flag, value) script arguments.
func nameArgs(name *string) (string, string) {
	if name == nil {
		return "0", ""
	}
	return "1", *name
}
