package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots"
	"github.com/m04kA/SMC-CareSlotService/pkg/logger"
)

func TestHandle(t *testing.T) {
	store := memstore.NewRepository()
	storagetest.Seed(t, store, []string{"Carer1"}, []string{"20250725"}, []string{"0900"})
	key := domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"}
	require.NoError(t, store.CompareAndSet(context.Background(), key, domain.AvailabilityFree, domain.NewFreeSlot(key).Booked("Alice")))

	log := logger.NewNop()
	h := NewHandler(slots.NewService(store, nil, log), log)
	body := `{"carer_id":"Carer1","date":"20250725","time_slot":"0900"}`

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/cancel", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Appointment cancelled successfully"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/cancel", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"No booking found for this time slot"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/cancel", strings.NewReader(`{"carer_id":"Carer1"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
