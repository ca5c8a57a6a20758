package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-CareSlotService/pkg/logger"
)

type downStore struct{}

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		store    Pinger
		wantCode int
		wantBody string
	}{
		{"up", memstore.NewRepository(), http.StatusOK, `{"status":"ok","store":"memory"}`},
		{"down", downStore{}, http.StatusServiceUnavailable, `{"status":"unavailable","store":"memory"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.store, "memory", logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
