package domain

import (
	"strings"

	"github.com/m04kA/SMC-CareSlotService/pkg/ptr"
)

// Availability is the state of a slot.
type Availability string

const (
	AvailabilityFree   Availability = "Free"
	AvailabilityBooked Availability = "Booked"
)

func (a Availability) IsValid() bool {
	return a == AvailabilityFree || a == AvailabilityBooked
}

// SlotKey identifies a slot: carer is the partition, date#time is the sort key.
type SlotKey struct {
	CarerID  string
	Date     string // YYYYMMDD
	TimeSlot string // HHMM
}

// DateTimeSlot returns the sort key "YYYYMMDD#HHMM".
func (k SlotKey) DateTimeSlot() string {
	return k.Date + SortKeySeparator + k.TimeSlot
}

func (k SlotKey) String() string {
	return k.CarerID + "/" + k.DateTimeSlot()
}

// ParseDateTimeSlot splits a sort key back into date and time.
func ParseDateTimeSlot(dts string) (date, timeSlot string, ok bool) {
	return strings.Cut(dts, SortKeySeparator)
}

// Slot is one bookable interval of one carer.
// BookingPersonName is set iff Availability is Booked.
type Slot struct {
	CarerID           string
	DateTimeSlot      string
	Date              string
	TimeSlot          string
	Availability      Availability
	BookingPersonName *string
}

// NewFreeSlot creates the initial record for key.
func NewFreeSlot(key SlotKey) *Slot {
	return &Slot{
		CarerID:      key.CarerID,
		DateTimeSlot: key.DateTimeSlot(),
		Date:         key.Date,
		TimeSlot:     key.TimeSlot,
		Availability: AvailabilityFree,
	}
}

func (s *Slot) Key() SlotKey {
	return SlotKey{CarerID: s.CarerID, Date: s.Date, TimeSlot: s.TimeSlot}
}

func (s *Slot) IsFree() bool {
	return s.Availability == AvailabilityFree
}

func (s *Slot) IsBooked() bool {
	return s.Availability == AvailabilityBooked
}

// Booked returns a copy of s held by personName.
func (s *Slot) Booked(personName string) *Slot {
	next := s.Clone()
	next.Availability = AvailabilityBooked
	next.BookingPersonName = ptr.Ptr(personName)
	return next
}

// Released returns a Free copy of s with the booking name removed.
func (s *Slot) Released() *Slot {
	next := s.Clone()
	next.Availability = AvailabilityFree
	next.BookingPersonName = nil
	return next
}

// Clone returns a deep copy.
func (s *Slot) Clone() *Slot {
	c := *s
	if s.BookingPersonName != nil {
		c.BookingPersonName = ptr.Ptr(*s.BookingPersonName)
	}
	return &c
}

// IsConsistent reports whether the name/availability pairing holds.
func (s *Slot) IsConsistent() bool {
	switch s.Availability {
	case AvailabilityFree:
		return s.BookingPersonName == nil
	case AvailabilityBooked:
		return s.BookingPersonName != nil
	default:
		return false
	}
}

// SlotFilter narrows an availability query. Empty fields match everything.
type SlotFilter struct {
	CarerID           string
	Date              string
	TimeSlot          string
	Availability      Availability
	BookingPersonName string
}

// Matches applies the filter to a single slot.
func (f SlotFilter) Matches(s *Slot) bool {
	if f.CarerID != "" && s.CarerID != f.CarerID {
		return false
	}
	if f.Date != "" && s.Date != f.Date {
		return false
	}
	if f.TimeSlot != "" && s.TimeSlot != f.TimeSlot {
		return false
	}
	if f.Availability != "" && s.Availability != f.Availability {
		return false
	}
	if f.BookingPersonName != "" && (s.BookingPersonName == nil || *s.BookingPersonName != f.BookingPersonName) {
		return false
	}
	return true
}
