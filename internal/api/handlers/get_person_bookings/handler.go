package get_person_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots/models"
)

const msgInvalidName = "person_name is required"

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

// Handle GET /api/v1/bookings?person_name=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	personName := r.URL.Query().Get("person_name")

	result, err := h.service.GetPersonBookings(r.Context(), personName)
	if err != nil {
		if errors.Is(err, slots.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid person name: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)
			return
		}

		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - person_name=%q, total=%d", personName, result.Total)
	handlers.RespondJSON(w, http.StatusOK, toResponse(result))
}

func toResponse(resp *models.SlotListResponse) *handlers.SlotListResponse {
	out := &handlers.SlotListResponse{
		Slots: make([]handlers.SlotResponse, 0, len(resp.Slots)),
		Total: resp.Total,
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, handlers.SlotResponse{
			CarerID:           s.CarerID,
			DateTimeSlot:      s.DateTimeSlot,
			Availability:      s.Availability,
			BookingPersonName: s.BookingPersonName,
			Date:              s.Date,
			TimeSlot:          s.TimeSlot,
		})
	}
	return out
}
