package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyField       = errors.New("field is required")
	ErrMalformedField   = errors.New("field is malformed")
	ErrUnknownAvailable = errors.New("unknown availability")
)

func ValidateCarerID(carerID string) error {
	if strings.TrimSpace(carerID) == "" {
		return fmt.Errorf("%w: carer_id", ErrEmptyField)
	}
	if strings.Contains(carerID, SortKeySeparator) {
		return fmt.Errorf("%w: carer_id must not contain %q", ErrMalformedField, SortKeySeparator)
	}
	return nil
}

// ValidateDate checks the YYYYMMDD shape only; unknown dates simply match no slot.
func ValidateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return fmt.Errorf("%w: date", ErrEmptyField)
	}
	if !isDigits(date, DateLength) {
		return fmt.Errorf("%w: date %q, expected YYYYMMDD", ErrMalformedField, date)
	}
	return nil
}

func ValidateTimeSlot(timeSlot string) error {
	if strings.TrimSpace(timeSlot) == "" {
		return fmt.Errorf("%w: time_slot", ErrEmptyField)
	}
	if !isDigits(timeSlot, TimeSlotLength) {
		return fmt.Errorf("%w: time_slot %q, expected HHMM", ErrMalformedField, timeSlot)
	}
	return nil
}

func ValidatePersonName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: person_name", ErrEmptyField)
	}
	if len(name) > MaxPersonNameLen {
		return fmt.Errorf("%w: person_name longer than %d bytes", ErrMalformedField, MaxPersonNameLen)
	}
	return nil
}

// ValidateSlotKey validates all three key parts.
func ValidateSlotKey(key SlotKey) error {
	return errors.Join(
		ValidateCarerID(key.CarerID),
		ValidateDate(key.Date),
		ValidateTimeSlot(key.TimeSlot),
	)
}

// ParseAvailability accepts "Free" or "Booked"; the empty string means any.
func ParseAvailability(s string) (Availability, error) {
	a := Availability(s)
	if s == "" || a.IsValid() {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAvailable, s)
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
