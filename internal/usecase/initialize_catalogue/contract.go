package initialize_catalogue

import (
	"context"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

type SlotWriter interface {
	PutIfAbsent(ctx context.Context, slot *domain.Slot) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
