package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CareSlotService/internal/api/handlers"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"

	defaultPingTimeout = 2 * time.Second
)

type Response struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type Handler struct {
	store   Pinger
	driver  string
	timeout time.Duration
	logger  Logger
}

func NewHandler(store Pinger, driver string, logger Logger) *Handler {
	return &Handler{
		store:   store,
		driver:  driver,
		timeout: defaultPingTimeout,
		logger:  logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("GET /healthz - Store %s is unavailable: %v", h.driver, err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: statusUnavailable, Store: h.driver})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK, Store: h.driver})
}
