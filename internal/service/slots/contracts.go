package slots

import (
	"context"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// SlotStore is the part of the store the service needs
type SlotStore interface {
	CompareAndSet(ctx context.Context, key domain.SlotKey, expected domain.Availability, next *domain.Slot) error
	GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error)
	GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error)
	ScanAll(ctx context.Context) ([]*domain.Slot, error)
}

// TransitionRecorder counts transition outcomes
type TransitionRecorder interface {
	RecordTransition(transition, result string)
}

// Logger is the logging subset used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
