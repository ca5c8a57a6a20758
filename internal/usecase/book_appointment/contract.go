package book_appointment

import (
	"context"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// SlotStore is the conditional write the booking relies on
type SlotStore interface {
	CompareAndSet(ctx context.Context, key domain.SlotKey, expected domain.Availability, next *domain.Slot) error
}

// TransitionRecorder counts transition outcomes
type TransitionRecorder interface {
	RecordTransition(transition, result string)
}

// Logger is the logging subset used here
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
