package cancel_appointment

import (
	"context"

	"github.com/m04kA/SMC-CareSlotService/internal/service/slots/models"
)

type SlotService interface {
	Cancel(ctx context.Context, req *models.CancelRequest) (*models.CancelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
