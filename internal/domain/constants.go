package domain

// Key layout
const (
	SortKeySeparator = "#"
	DateLayout       = "20060102" // YYYYMMDD
	TimeSlotLayout   = "1504"     // HHMM
	DateLength       = 8
	TimeSlotLength   = 4
)

// Reference catalogue
const (
	DefaultStartHour       = 9
	DefaultEndHour         = 15
	DefaultIntervalMinutes = 30
)

var (
	DefaultCarers = []string{"Carer1", "Carer2", "Carer3"}
	DefaultDates  = []string{"20250725", "20250726", "20250727"}
)

// Limits
const (
	MinHour            = 0
	MaxHour            = 23
	MinIntervalMinutes = 1
	MaxIntervalMinutes = 60
	MaxPersonNameLen   = 200
)

// Outcome messages returned to callers.
const (
	MsgBooked          = "Appointment booked successfully"
	MsgSlotUnavailable = "Time slot is already booked or does not exist"
	MsgCancelled       = "Appointment cancelled successfully"
	MsgNoActiveBooking = "No booking found for this time slot"
	MsgInitialized     = "Slot catalogue initialized"
)
