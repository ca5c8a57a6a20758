package mongostore

import (
	"time"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// slotDocument is the persisted form of a slot.
type slotDocument struct {
	CarerID           string    `bson:"carer_id"`
	DateTimeSlot      string    `bson:"date_time_slot"`
	Date              string    `bson:"date"`
	TimeSlot          string    `bson:"time_slot"`
	Availability      string    `bson:"availability"`
	BookingPersonName *string   `bson:"booking_person_name,omitempty"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

func toDocument(slot *domain.Slot, now time.Time) slotDocument {
	return slotDocument{
		CarerID:           slot.CarerID,
		DateTimeSlot:      slot.DateTimeSlot,
		Date:              slot.Date,
		TimeSlot:          slot.TimeSlot,
		Availability:      string(slot.Availability),
		BookingPersonName: slot.BookingPersonName,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (d slotDocument) toDomain() *domain.Slot {
	return &domain.Slot{
		CarerID:           d.CarerID,
		DateTimeSlot:      d.DateTimeSlot,
		Date:              d.Date,
		TimeSlot:          d.TimeSlot,
		Availability:      domain.Availability(d.Availability),
		BookingPersonName: d.BookingPersonName,
	}
}
