package book_appointment

import (
	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	bookAppointment "github.com/m04kA/SMC-CareSlotService/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	CarerID    string `json:"carer_id"`
	Date       string `json:"date"`      // "20250725"
	TimeSlot   string `json:"time_slot"` // "0930"
	PersonName string `json:"person_name"`
}

func (r *BookAppointmentRequest) ToUseCaseRequest() *bookAppointment.Request {
	return &bookAppointment.Request{
		CarerID:    r.CarerID,
		Date:       r.Date,
		TimeSlot:   r.TimeSlot,
		PersonName: r.PersonName,
	}
}

func FromUseCaseResponse(resp *bookAppointment.Response) *handlers.OutcomeResponse {
	return &handlers.OutcomeResponse{
		Success: resp.Success,
		Message: resp.Message,
	}
}
