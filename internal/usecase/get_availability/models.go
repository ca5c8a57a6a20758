package get_availability

import "github.com/m04kA/SMC-CareSlotService/internal/domain"

// Request holds optional filters; empty fields are not applied.
type Request struct {
	CarerID      string
	Date         string
	TimeSlot     string
	Availability string
	PersonName   string
}

type Response struct {
	Slots []*domain.Slot
	Plan  Plan
}
