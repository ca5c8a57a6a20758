package domain

// CatalogueSpec describes the closed universe of slots:
// every carer × every date × every generated time slot.
type CatalogueSpec struct {
	Carers          []string
	Dates           []string
	StartHour       int
	EndHour         int
	IntervalMinutes int
}

// DefaultCatalogueSpec is 3 carers × 3 dates × 14 half-hour slots.
func DefaultCatalogueSpec() CatalogueSpec {
	return CatalogueSpec{
		Carers:          append([]string(nil), DefaultCarers...),
		Dates:           append([]string(nil), DefaultDates...),
		StartHour:       DefaultStartHour,
		EndHour:         DefaultEndHour,
		IntervalMinutes: DefaultIntervalMinutes,
	}
}

// SlotsPerDay is the number of time slots generated for one carer and date.
func (c CatalogueSpec) SlotsPerDay() int {
	if c.IntervalMinutes <= 0 || c.EndHour < c.StartHour {
		return 0
	}
	perHour := (60 + c.IntervalMinutes - 1) / c.IntervalMinutes
	return (c.EndHour - c.StartHour + 1) * perHour
}

// Size is the total number of slots in the catalogue.
func (c CatalogueSpec) Size() int {
	return len(c.Carers) * len(c.Dates) * c.SlotsPerDay()
}
