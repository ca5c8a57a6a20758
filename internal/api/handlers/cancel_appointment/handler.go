package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "carer_id, date (YYYYMMDD) and time_slot (HHMM) are required"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/cancel - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, &handlers.OutcomeResponse{Message: msgInvalidRequestBody})
		return
	}

	result, err := h.service.Cancel(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /appointments/cancel - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, &handlers.OutcomeResponse{Message: msgInvalidInput})

		case errors.Is(err, slots.ErrNoActiveBooking):
			h.logger.Info("POST /appointments/cancel - No active booking: carer_id=%s, date=%s, time_slot=%s",
				req.CarerID, req.Date, req.TimeSlot)
			handlers.RespondJSON(w, http.StatusConflict, &handlers.OutcomeResponse{Message: domain.MsgNoActiveBooking})

		default:
			h.logger.Error("POST /appointments/cancel - Failed to cancel: carer_id=%s, date=%s, time_slot=%s, error=%v",
				req.CarerID, req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/cancel - Cancelled: carer_id=%s, slot=%s", result.CarerID, result.DateTimeSlot)
	handlers.RespondJSON(w, http.StatusOK, &handlers.OutcomeResponse{Success: result.Success, Message: result.Message})
}
