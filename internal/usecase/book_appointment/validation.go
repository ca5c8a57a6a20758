package book_appointment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// normalizeRequest returns a copy with surrounding whitespace trimmed.
func normalizeRequest(req Request) Request {
	return Request{
		CarerID:    strings.TrimSpace(req.CarerID),
		Date:       strings.TrimSpace(req.Date),
		TimeSlot:   strings.TrimSpace(req.TimeSlot),
		PersonName: strings.TrimSpace(req.PersonName),
	}
}

func validateRequest(req *Request) error {
	if err := errors.Join(
		domain.ValidateSlotKey(req.Key()),
		domain.ValidatePersonName(req.PersonName),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
