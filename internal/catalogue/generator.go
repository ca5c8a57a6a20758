package catalogue

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// TimeSlots yields HHMM labels for every hour in [startHour, endHour] and
// every minute offset 0, interval, 2*interval... below 60. The sequence is
// lazy and can be ranged over any number of times.
func TimeSlots(startHour, endHour, intervalMinutes int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if intervalMinutes <= 0 {
			return
		}
		for hour := startHour; hour <= endHour; hour++ {
			for minute := 0; minute < 60; minute += intervalMinutes {
				if !yield(fmt.Sprintf("%02d%02d", hour, minute)) {
					return
				}
			}
		}
	}
}

// Generate yields every (carer, date, time slot) key of spec, carers outermost.
// Call Validate first; an invalid spec yields a partial or empty sequence.
func Generate(spec domain.CatalogueSpec) iter.Seq[domain.SlotKey] {
	return func(yield func(domain.SlotKey) bool) {
		for _, carer := range spec.Carers {
			for _, date := range spec.Dates {
				for ts := range TimeSlots(spec.StartHour, spec.EndHour, spec.IntervalMinutes) {
					if !yield(domain.SlotKey{CarerID: carer, Date: date, TimeSlot: ts}) {
						return
					}
				}
			}
		}
	}
}

// Validate checks the catalogue parameters.
func Validate(spec domain.CatalogueSpec) error {
	if spec.StartHour < domain.MinHour || spec.EndHour > domain.MaxHour || spec.StartHour > spec.EndHour {
		return fmt.Errorf("%w: start=%d end=%d", ErrInvalidHours, spec.StartHour, spec.EndHour)
	}
	if spec.IntervalMinutes < domain.MinIntervalMinutes || spec.IntervalMinutes > domain.MaxIntervalMinutes {
		return fmt.Errorf("%w: %d minutes", ErrInvalidInterval, spec.IntervalMinutes)
	}
	if len(spec.Carers) == 0 {
		return ErrNoCarers
	}
	if len(spec.Dates) == 0 {
		return ErrNoDates
	}

	for _, carer := range spec.Carers {
		if strings.TrimSpace(carer) == "" || strings.Contains(carer, domain.SortKeySeparator) {
			return fmt.Errorf("%w: %q", ErrInvalidCarerID, carer)
		}
	}
	for _, date := range spec.Dates {
		if len(date) != domain.DateLength {
			return fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
		}
	}

	return nil
}

// TimeSlotList collects TimeSlots for spec into a slice.
func TimeSlotList(spec domain.CatalogueSpec) []string {
	out := make([]string, 0, spec.SlotsPerDay())
	for ts := range TimeSlots(spec.StartHour, spec.EndHour, spec.IntervalMinutes) {
		out = append(out, ts)
	}
	return out
}
