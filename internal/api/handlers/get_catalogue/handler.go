package get_catalogue

import (
	"net/http"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
)

type Handler struct {
	provider CatalogueProvider
	logger   Logger
}

func NewHandler(provider CatalogueProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/catalogue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := FromSpec(h.provider.Spec())

	h.logger.Info("GET /catalogue - carers=%d, dates=%d, total_slots=%d",
		len(resp.Carers), len(resp.Dates), resp.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
