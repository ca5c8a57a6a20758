package cancel_appointment

import "github.com/m04kA/SMC-CareSlotService/internal/service/slots/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CarerID  string `json:"carer_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelRequest {
	return &models.CancelRequest{
		CarerID:  r.CarerID,
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
	}
}
