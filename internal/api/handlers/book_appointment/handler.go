package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-CareSlotService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "carer_id, date (YYYYMMDD), time_slot (HHMM) and person_name are required"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, &handlers.OutcomeResponse{Message: msgInvalidRequestBody})
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, &handlers.OutcomeResponse{Message: msgInvalidInput})

		case errors.Is(err, bookAppointment.ErrSlotUnavailable):
			h.logger.Info("POST /appointments - Slot unavailable: carer_id=%s, date=%s, time_slot=%s",
				req.CarerID, req.Date, req.TimeSlot)
			handlers.RespondJSON(w, http.StatusConflict, &handlers.OutcomeResponse{Message: domain.MsgSlotUnavailable})

		default:
			h.logger.Error("POST /appointments - Failed to book: carer_id=%s, date=%s, time_slot=%s, error=%v",
				req.CarerID, req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Booked: carer_id=%s, slot=%s", result.CarerID, result.DateTimeSlot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
