package careslotsapi

// Slot mirrors the server's slot representation.
type Slot struct {
	CarerID           string  `json:"carer_id"`
	DateTimeSlot      string  `json:"date_time_slot"`
	Availability      string  `json:"availability"`
	BookingPersonName *string `json:"booking_person_name,omitempty"`
	Date              string  `json:"date"`
	TimeSlot          string  `json:"time_slot"`
}

type InitializeResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Total    int    `json:"total"`
	Created  int    `json:"created"`
	Existing int    `json:"existing"`
	Failed   int    `json:"failed"`
}

// AvailabilityFilter fields are optional; empty values are not sent.
type AvailabilityFilter struct {
	CarerID      string
	Date         string
	TimeSlot     string
	Availability string
}

type BookRequest struct {
	CarerID    string `json:"carer_id"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
	PersonName string `json:"person_name"`
}

type CancelRequest struct {
	CarerID  string `json:"carer_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the server's error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
