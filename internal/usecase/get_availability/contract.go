package get_availability

import (
	"context"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// SlotReader covers the three read shapes the planner chooses between
type SlotReader interface {
	GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error)
	GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error)
	ScanAll(ctx context.Context) ([]*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
