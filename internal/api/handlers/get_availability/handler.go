package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-CareSlotService/internal/usecase/get_availability"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params (all optional): carer_id, date, time_slot, availability, person_name
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ToUseCaseRequest(r.URL.Query())

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed to query: carer_id=%q, date=%q, error=%v",
				req.CarerID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - carer_id=%q, date=%q, plan=%s, slots_count=%d",
		req.CarerID, req.Date, result.Plan, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
