package get_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// toFilter validates the optional fields and builds the slot filter.
func toFilter(req *Request) (domain.SlotFilter, error) {
	f := domain.SlotFilter{
		CarerID:           strings.TrimSpace(req.CarerID),
		Date:              strings.TrimSpace(req.Date),
		TimeSlot:          strings.TrimSpace(req.TimeSlot),
		BookingPersonName: strings.TrimSpace(req.PersonName),
	}

	if f.CarerID != "" {
		if err := domain.ValidateCarerID(f.CarerID); err != nil {
			return f, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if f.Date != "" {
		if err := domain.ValidateDate(f.Date); err != nil {
			return f, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if f.TimeSlot != "" {
		if err := domain.ValidateTimeSlot(f.TimeSlot); err != nil {
			return f, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	availability, err := domain.ParseAvailability(strings.TrimSpace(req.Availability))
	if err != nil {
		return f, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	f.Availability = availability

	return f, nil
}
