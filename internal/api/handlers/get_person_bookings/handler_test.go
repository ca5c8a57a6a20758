package get_person_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
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
	storagetest.Seed(t, store, []string{"Carer1", "Carer2"}, []string{"20250725"}, []string{"0900"})

	bookings := map[string]string{"Carer1": "Alice", "Carer2": "Bob"}
	for carer, name := range bookings {
		k := domain.SlotKey{CarerID: carer, Date: "20250725", TimeSlot: "0900"}
		require.NoError(t, store.CompareAndSet(context.Background(), k, domain.AvailabilityFree, domain.NewFreeSlot(k).Booked(name)))
	}

	log := logger.NewNop()
	h := NewHandler(slots.NewService(store, nil, log), log)

	t.Run("by name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?person_name=Alice", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"slots":[{"carer_id":"Carer1","date_time_slot":"20250725#0900","availability":"Booked",
			"booking_person_name":"Alice","date":"20250725","time_slot":"0900"}],"total":1}`, rec.Body.String())
	})

	t.Run("no bookings", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?person_name=Carol", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"slots":[],"total":0}`, rec.Body.String())
	})

	t.Run("missing name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
