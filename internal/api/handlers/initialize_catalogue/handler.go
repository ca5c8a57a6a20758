package initialize_catalogue

import (
	"net/http"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
)

const msgPartialFailure = "Some slots could not be written"

type Handler struct {
	useCase InitializeCatalogueUseCase
	logger  Logger
}

func NewHandler(useCase InitializeCatalogueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/initialize
// Idempotent: existing slots, booked or not, are left as they are.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /initialize - Failed to initialize catalogue: %v", err)
		if result == nil {
			handlers.RespondInternalError(w)
			return
		}

		// partial run: report the counts so the caller can retry
		resp := FromUseCaseResponse(result)
		resp.Success = false
		resp.Message = msgPartialFailure
		handlers.RespondJSON(w, http.StatusInternalServerError, resp)
		return
	}

	h.logger.Info("POST /initialize - Catalogue initialized: total=%d, created=%d, existing=%d",
		result.Total, result.Created, result.Existing)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
