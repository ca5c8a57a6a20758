package get_availability

import (
	"net/url"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CareSlotService/internal/usecase/get_availability"
)

// ToUseCaseRequest reads the optional filters from the query string.
func ToUseCaseRequest(q url.Values) *getAvailability.Request {
	return &getAvailability.Request{
		CarerID:      q.Get("carer_id"),
		Date:         q.Get("date"),
		TimeSlot:     q.Get("time_slot"),
		Availability: q.Get("availability"),
		PersonName:   q.Get("person_name"),
	}
}

func FromUseCaseResponse(resp *getAvailability.Response) []handlers.SlotResponse {
	out := make([]handlers.SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		out = append(out, fromDomainSlot(s))
	}
	return out
}

func fromDomainSlot(s *domain.Slot) handlers.SlotResponse {
	return handlers.SlotResponse{
		CarerID:           s.CarerID,
		DateTimeSlot:      s.DateTimeSlot,
		Availability:      string(s.Availability),
		BookingPersonName: s.BookingPersonName,
		Date:              s.Date,
		TimeSlot:          s.TimeSlot,
	}
}
