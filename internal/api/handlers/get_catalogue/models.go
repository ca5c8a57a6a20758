package get_catalogue

import (
	"github.com/m04kA/SMC-CareSlotService/internal/catalogue"
	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// CatalogueResponse describes the slot universe built by initialize.
type CatalogueResponse struct {
	Carers          []string `json:"carers"`
	Dates           []string `json:"dates"`
	TimeSlots       []string `json:"time_slots"`
	StartHour       int      `json:"start_hour"`
	EndHour         int      `json:"end_hour"`
	IntervalMinutes int      `json:"interval_minutes"`
	TotalSlots      int      `json:"total_slots"`
}

func FromSpec(spec domain.CatalogueSpec) *CatalogueResponse {
	timeSlots := catalogue.TimeSlotList(spec)
	return &CatalogueResponse{
		Carers:          spec.Carers,
		Dates:           spec.Dates,
		TimeSlots:       timeSlots,
		StartHour:       spec.StartHour,
		EndHour:         spec.EndHour,
		IntervalMinutes: spec.IntervalMinutes,
		TotalSlots:      len(spec.Carers) * len(spec.Dates) * len(timeSlots),
	}
}
