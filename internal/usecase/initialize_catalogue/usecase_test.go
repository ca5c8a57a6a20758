package initialize_catalogue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-CareSlotService/pkg/logger"
)

// flakyWriter fails every slot at the given time and forwards the rest.
type flakyWriter struct {
	next     SlotWriter
	failAt   string
	attempts atomic.Int64
}

func (w *flakyWriter) PutIfAbsent(ctx context.Context, slot *domain.Slot) error {
	w.attempts.Add(1)
	if slot.TimeSlot == w.failAt {
		return errors.New("write timeout")
	}
	return w.next.PutIfAbsent(ctx, slot)
}

func TestExecute_SeedsReferenceCatalogue(t *testing.T) {
	store := memstore.NewRepository()
	uc := NewUseCase(store, domain.DefaultCatalogueSpec(), 0, logger.NewNop())

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 126, resp.Total)
	assert.Equal(t, 126, resp.Created)
	assert.Equal(t, 0, resp.Existing)
	assert.Equal(t, 126, store.Len())

	all, err := store.ScanAll(context.Background())
	require.NoError(t, err)
	for _, s := range all {
		assert.Equal(t, domain.AvailabilityFree, s.Availability)
		assert.Nil(t, s.BookingPersonName)
	}
}

func TestExecute_IdempotentAndPreservesBookings(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewRepository()
	uc := NewUseCase(store, domain.DefaultCatalogueSpec(), 4, logger.NewNop())

	_, err := uc.Execute(ctx)
	require.NoError(t, err)

	key := domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "1000"}
	require.NoError(t, store.CompareAndSet(ctx, key, domain.AvailabilityFree, domain.NewFreeSlot(key).Booked("Alice")))

	resp, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Created)
	assert.Equal(t, 126, resp.Existing)
	assert.Equal(t, 126, store.Len())

	slots, err := store.GetByPartitionAndPrefix(ctx, "Carer1", key.DateTimeSlot())
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, domain.AvailabilityBooked, slots[0].Availability)
	assert.Equal(t, "Alice", *slots[0].BookingPersonName)
}

func TestExecute_CollectsFailuresAfterAllWrites(t *testing.T) {
	store := memstore.NewRepository()
	writer := &flakyWriter{next: store, failAt: "0930"}
	uc := NewUseCase(writer, domain.DefaultCatalogueSpec(), 8, logger.NewNop())

	resp, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "9 of 126 writes failed")

	assert.Equal(t, int64(126), writer.attempts.Load(), "failures must not stop other writes")
	require.NotNil(t, resp)
	assert.Equal(t, 117, resp.Created)
	assert.Equal(t, 9, resp.Failed)
	assert.Equal(t, 117, store.Len())
}

func TestExecute_InvalidCatalogue(t *testing.T) {
	spec := domain.DefaultCatalogueSpec()
	spec.IntervalMinutes = 0

	uc := NewUseCase(memstore.NewRepository(), spec, 1, logger.NewNop())
	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCatalogue)
}
