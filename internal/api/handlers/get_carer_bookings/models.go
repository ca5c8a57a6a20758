package get_carer_bookings

import (
	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots/models"
)

func FromServiceResponse(resp *models.SlotListResponse) *handlers.SlotListResponse {
	out := &handlers.SlotListResponse{
		Slots: make([]handlers.SlotResponse, 0, len(resp.Slots)),
		Total: resp.Total,
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, handlers.SlotResponse{
			CarerID:           s.CarerID,
			DateTimeSlot:      s.DateTimeSlot,
			Availability:      s.Availability,
			BookingPersonName: s.BookingPersonName,
			Date:              s.Date,
			TimeSlot:          s.TimeSlot,
		})
	}
	return out
}
