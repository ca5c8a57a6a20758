package slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-CareSlotService/internal/service/slots/models"
	"github.com/m04kA/SMC-CareSlotService/pkg/logger"
)

type downStore struct{}

func (downStore) CompareAndSet(context.Context, domain.SlotKey, domain.Availability, *domain.Slot) error {
	return errors.New("no route to host")
}

func (downStore) GetByPartition(context.Context, string) ([]*domain.Slot, error) {
	return nil, errors.New("no route to host")
}

func (downStore) GetByPartitionAndPrefix(context.Context, string, string) ([]*domain.Slot, error) {
	return nil, errors.New("no route to host")
}

func (downStore) ScanAll(context.Context) ([]*domain.Slot, error) {
	return nil, errors.New("no route to host")
}

func setup(t *testing.T) (*Service, *memstore.Repository) {
	store := memstore.NewRepository()
	storagetest.Seed(t, store, []string{"Carer1", "Carer2"}, []string{"20250725", "20250726"}, []string{"0900", "0930"})
	return NewService(store, nil, logger.NewNop()), store
}

func book(t *testing.T, store *memstore.Repository, carer, date, ts, name string) {
	t.Helper()
	key := domain.SlotKey{CarerID: carer, Date: date, TimeSlot: ts}
	require.NoError(t, store.CompareAndSet(context.Background(), key, domain.AvailabilityFree, domain.NewFreeSlot(key).Booked(name)))
}

func TestCancel_RoundTrip(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	book(t, store, "Carer1", "20250725", "0900", "Alice")

	resp, err := svc.Cancel(ctx, &models.CancelRequest{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, domain.MsgCancelled, resp.Message)

	slot, err := svc.GetSlot(ctx, domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"})
	require.NoError(t, err)
	assert.Equal(t, "Free", slot.Availability)
	assert.Nil(t, slot.BookingPersonName)
	assert.Equal(t, 8, store.Len(), "cancel keeps the record")
}

func TestCancel_FreeSlotHasNoBooking(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Cancel(context.Background(), &models.CancelRequest{CarerID: "Carer1", Date: "20250725", TimeSlot: "0930"})
	assert.ErrorIs(t, err, ErrNoActiveBooking)
}

func TestCancel_MissingSlotHasNoBooking(t *testing.T) {
	svc, store := setup(t)

	_, err := svc.Cancel(context.Background(), &models.CancelRequest{CarerID: "Carer7", Date: "20250725", TimeSlot: "0930"})
	assert.ErrorIs(t, err, ErrNoActiveBooking)
	assert.Equal(t, 8, store.Len())
}

func TestCancel_Twice(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	book(t, store, "Carer2", "20250726", "0930", "Bob")

	req := &models.CancelRequest{CarerID: "Carer2", Date: "20250726", TimeSlot: "0930"}
	_, err := svc.Cancel(ctx, req)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, req)
	assert.ErrorIs(t, err, ErrNoActiveBooking)
}

func TestCancel_Validation(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Cancel(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Cancel(context.Background(), &models.CancelRequest{CarerID: "Carer1", Date: "20250725"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_StoreFailure(t *testing.T) {
	svc := NewService(downStore{}, nil, logger.NewNop())

	_, err := svc.Cancel(context.Background(), &models.CancelRequest{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetSlot(t *testing.T) {
	svc, store := setup(t)
	book(t, store, "Carer1", "20250726", "0930", "Alice")

	slot, err := svc.GetSlot(context.Background(), domain.SlotKey{CarerID: "Carer1", Date: "20250726", TimeSlot: "0930"})
	require.NoError(t, err)
	assert.Equal(t, "Booked", slot.Availability)
	assert.Equal(t, "20250726#0930", slot.DateTimeSlot)
	require.NotNil(t, slot.BookingPersonName)
	assert.Equal(t, "Alice", *slot.BookingPersonName)

	_, err = svc.GetSlot(context.Background(), domain.SlotKey{CarerID: "Carer1", Date: "20250726", TimeSlot: "1000"})
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = svc.GetSlot(context.Background(), domain.SlotKey{CarerID: "Carer1", Date: "0726", TimeSlot: "1000"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCarerBookings(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	book(t, store, "Carer1", "20250726", "0930", "Alice")
	book(t, store, "Carer1", "20250725", "0900", "Bob")
	book(t, store, "Carer2", "20250725", "0900", "Alice")

	all, err := svc.GetCarerBookings(ctx, "Carer1", "")
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, "20250725#0900", all.Slots[0].DateTimeSlot)
	assert.Equal(t, "20250726#0930", all.Slots[1].DateTimeSlot)

	oneDay, err := svc.GetCarerBookings(ctx, "Carer1", "20250726")
	require.NoError(t, err)
	assert.Equal(t, 1, oneDay.Total)

	_, err = svc.GetCarerBookings(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPersonBookings(t *testing.T) {
	svc, store := setup(t)
	book(t, store, "Carer2", "20250725", "0900", "Alice")
	book(t, store, "Carer1", "20250726", "0930", "Alice")
	book(t, store, "Carer1", "20250725", "0900", "Bob")

	resp, err := svc.GetPersonBookings(context.Background(), "Alice")
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Carer1", resp.Slots[0].CarerID)
	assert.Equal(t, "Carer2", resp.Slots[1].CarerID)

	_, err = svc.GetPersonBookings(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewService(downStore{}, nil, logger.NewNop()).GetPersonBookings(context.Background(), "Alice")
	assert.ErrorIs(t, err, ErrInternal)
}
