package get_carer_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots"
)

const msgInvalidParams = "invalid carer id or date (YYYYMMDD)"

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

// Handle GET /api/v1/carers/{carerId}/bookings
// Query params: date (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carerID := mux.Vars(r)["carerId"]
	date := r.URL.Query().Get("date")

	result, err := h.service.GetCarerBookings(r.Context(), carerID, date)
	if err != nil {
		if errors.Is(err, slots.ErrInvalidInput) {
			h.logger.Warn("GET /carers/{id}/bookings - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}

		h.logger.Error("GET /carers/{id}/bookings - Failed to list bookings: carer_id=%s, error=%v", carerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /carers/{id}/bookings - carer_id=%s, date=%q, total=%d", carerID, date, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
