package book_appointment

import "github.com/m04kA/SMC-CareSlotService/internal/domain"

// Request is a booking attempt for one slot.
type Request struct {
	CarerID    string
	Date       string
	TimeSlot   string
	PersonName string
}

func (r *Request) Key() domain.SlotKey {
	return domain.SlotKey{CarerID: r.CarerID, Date: r.Date, TimeSlot: r.TimeSlot}
}

type Response struct {
	Success      bool
	Message      string
	CarerID      string
	DateTimeSlot string
	PersonName   string
}
