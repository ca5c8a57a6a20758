package models

import (
	"strings"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// CancelRequest identifies the slot whose booking is released.
type CancelRequest struct {
	CarerID  string
	Date     string
	TimeSlot string
}

func (r *CancelRequest) Key() domain.SlotKey {
	return domain.SlotKey{
		CarerID:  strings.TrimSpace(r.CarerID),
		Date:     strings.TrimSpace(r.Date),
		TimeSlot: strings.TrimSpace(r.TimeSlot),
	}
}

type CancelResponse struct {
	Success      bool
	Message      string
	CarerID      string
	DateTimeSlot string
}

// SlotResponse is the read model of a slot.
type SlotResponse struct {
	CarerID           string
	DateTimeSlot      string
	Date              string
	TimeSlot          string
	Availability      string
	BookingPersonName *string
}

type SlotListResponse struct {
	Slots []*SlotResponse
	Total int
}

func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		CarerID:           s.CarerID,
		DateTimeSlot:      s.DateTimeSlot,
		Date:              s.Date,
		TimeSlot:          s.TimeSlot,
		Availability:      string(s.Availability),
		BookingPersonName: s.BookingPersonName,
	}
}

func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	out := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromDomainSlot(s))
	}
	return &SlotListResponse{Slots: out, Total: len(out)}
}
