package get_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots"
)

const (
	msgInvalidKey = "carer id, date (YYYYMMDD) and time slot (HHMM) are required"
	msgNotFound   = "slot not found"
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

// Handle GET /api/v1/carers/{carerId}/slots/{date}/{timeSlot}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := domain.SlotKey{CarerID: vars["carerId"], Date: vars["date"], TimeSlot: vars["timeSlot"]}

	result, err := h.service.GetSlot(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /carers/{id}/slots/{date}/{time} - Invalid key: %v", err)
			handlers.RespondBadRequest(w, msgInvalidKey)

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("GET /carers/{id}/slots/{date}/{time} - Not found: %s", key)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /carers/{id}/slots/{date}/{time} - Failed to get slot %s: %v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.SlotResponse{
		CarerID:           result.CarerID,
		DateTimeSlot:      result.DateTimeSlot,
		Availability:      result.Availability,
		BookingPersonName: result.BookingPersonName,
		Date:              result.Date,
		TimeSlot:          result.TimeSlot,
	})
}
