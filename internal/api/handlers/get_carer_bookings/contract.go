package get_carer_bookings

import (
	"context"

	"github.com/m04kA/SMC-CareSlotService/internal/service/slots/models"
)

type SlotService interface {
	GetCarerBookings(ctx context.Context, carerID, date string) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
