// Package storagetest holds the behavioural checks every SlotStore backend
// must pass. Backend packages call RunSlotStoreSuite from their own tests.
package storagetest

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
)

// NewStoreFunc returns an empty store. It is called once per subtest.
type NewStoreFunc func(t *testing.T) storage.SlotStore

func key(carer, date, ts string) domain.SlotKey {
	return domain.SlotKey{CarerID: carer, Date: date, TimeSlot: ts}
}

// Seed writes Free slots for every combination and fails the test on error.
func Seed(t *testing.T, store storage.SlotStore, carers, dates, times []string) {
	t.Helper()
	ctx := context.Background()
	for _, c := range carers {
		for _, d := range dates {
			for _, ts := range times {
				require.NoError(t, store.PutIfAbsent(ctx, domain.NewFreeSlot(key(c, d, ts))))
			}
		}
	}
}

func RunSlotStoreSuite(t *testing.T, newStore NewStoreFunc) {
	t.Run("PutIfAbsent then read back", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		k := key("Carer1", "20250725", "0900")
		require.NoError(t, store.PutIfAbsent(ctx, domain.NewFreeSlot(k)))

		slots, err := store.GetByPartition(ctx, "Carer1")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "Carer1", slots[0].CarerID)
		assert.Equal(t, "20250725#0900", slots[0].DateTimeSlot)
		assert.Equal(t, "20250725", slots[0].Date)
		assert.Equal(t, "0900", slots[0].TimeSlot)
		assert.Equal(t, domain.AvailabilityFree, slots[0].Availability)
		assert.Nil(t, slots[0].BookingPersonName)
	})

	t.Run("PutIfAbsent rejects existing key and keeps record", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		k := key("Carer1", "20250725", "0900")
		require.NoError(t, store.PutIfAbsent(ctx, domain.NewFreeSlot(k)))
		require.NoError(t, store.CompareAndSet(ctx, k, domain.AvailabilityFree, domain.NewFreeSlot(k).Booked("Alice")))

		err := store.PutIfAbsent(ctx, domain.NewFreeSlot(k))
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)

		slots, err := store.GetByPartition(ctx, "Carer1")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, domain.AvailabilityBooked, slots[0].Availability)
		require.NotNil(t, slots[0].BookingPersonName)
		assert.Equal(t, "Alice", *slots[0].BookingPersonName)
	})

	t.Run("PutIfAbsent rejects inconsistent slot", func(t *testing.T) {
		store := newStore(t)
		bad := domain.NewFreeSlot(key("Carer1", "20250725", "0900"))
		bad.Availability = domain.AvailabilityBooked

		err := store.PutIfAbsent(context.Background(), bad)
		assert.ErrorIs(t, err, storage.ErrInvalidSlot)
	})

	t.Run("CompareAndSet book and release", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		k := key("Carer2", "20250726", "1030")
		free := domain.NewFreeSlot(k)
		require.NoError(t, store.PutIfAbsent(ctx, free))

		require.NoError(t, store.CompareAndSet(ctx, k, domain.AvailabilityFree, free.Booked("Bob")))

		slots, err := store.GetByPartitionAndPrefix(ctx, "Carer2", k.DateTimeSlot())
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, domain.AvailabilityBooked, slots[0].Availability)
		require.NotNil(t, slots[0].BookingPersonName)
		assert.Equal(t, "Bob", *slots[0].BookingPersonName)

		require.NoError(t, store.CompareAndSet(ctx, k, domain.AvailabilityBooked, free))

		slots, err = store.GetByPartitionAndPrefix(ctx, "Carer2", k.DateTimeSlot())
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, domain.AvailabilityFree, slots[0].Availability)
		assert.Nil(t, slots[0].BookingPersonName)
	})

	t.Run("CompareAndSet fails on mismatch", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		k := key("Carer1", "20250725", "0900")
		free := domain.NewFreeSlot(k)
		require.NoError(t, store.PutIfAbsent(ctx, free))
		require.NoError(t, store.CompareAndSet(ctx, k, domain.AvailabilityFree, free.Booked("Alice")))

		err := store.CompareAndSet(ctx, k, domain.AvailabilityFree, free.Booked("Bob"))
		assert.ErrorIs(t, err, storage.ErrConditionFailed)

		slots, err := store.GetByPartition(ctx, "Carer1")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "Alice", *slots[0].BookingPersonName)
	})

	t.Run("CompareAndSet fails on missing key", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		k := key("Carer9", "20250725", "0900")
		err := store.CompareAndSet(ctx, k, domain.AvailabilityFree, domain.NewFreeSlot(k).Booked("Alice"))
		assert.ErrorIs(t, err, storage.ErrConditionFailed)

		slots, err := store.GetByPartition(ctx, "Carer9")
		require.NoError(t, err)
		assert.Empty(t, slots, "failed CAS must not create a record")
	})

	t.Run("CompareAndSet rejects mismatched next key", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		k := key("Carer1", "20250725", "0900")
		require.NoError(t, store.PutIfAbsent(ctx, domain.NewFreeSlot(k)))

		other := domain.NewFreeSlot(key("Carer1", "20250725", "0930")).Booked("Alice")
		err := store.CompareAndSet(ctx, k, domain.AvailabilityFree, other)
		assert.ErrorIs(t, err, storage.ErrInvalidSlot)
	})

	t.Run("partition reads are ordered and isolated", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		Seed(t, store, []string{"Carer1", "Carer10"}, []string{"20250726", "20250725"}, []string{"0930", "0900"})

		slots, err := store.GetByPartition(ctx, "Carer1")
		require.NoError(t, err)
		require.Len(t, slots, 4)

		got := make([]string, 0, len(slots))
		for _, s := range slots {
			assert.Equal(t, "Carer1", s.CarerID)
			got = append(got, s.DateTimeSlot)
		}
		assert.Equal(t, []string{"20250725#0900", "20250725#0930", "20250726#0900", "20250726#0930"}, got)

		empty, err := store.GetByPartition(ctx, "Nobody")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("prefix reads stay within the date", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		Seed(t, store, []string{"Carer1"}, []string{"20250725", "20250726"}, []string{"0900", "0930", "1000"})

		slots, err := store.GetByPartitionAndPrefix(ctx, "Carer1", "20250726#")
		require.NoError(t, err)
		require.Len(t, slots, 3)
		for _, s := range slots {
			assert.Equal(t, "20250726", s.Date)
		}

		slots, err = store.GetByPartitionAndPrefix(ctx, "Carer1", "20250726#09")
		require.NoError(t, err)
		assert.Len(t, slots, 2)

		slots, err = store.GetByPartitionAndPrefix(ctx, "Carer1", "2025_%")
		require.NoError(t, err)
		assert.Empty(t, slots, "prefix must be matched literally")
	})

	t.Run("ScanAll returns everything ordered", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		Seed(t, store, []string{"Carer2", "Carer1"}, []string{"20250725"}, []string{"0930", "0900"})

		slots, err := store.ScanAll(ctx)
		require.NoError(t, err)
		require.Len(t, slots, 4)

		got := make([]string, 0, len(slots))
		for _, s := range slots {
			got = append(got, s.CarerID+"/"+s.DateTimeSlot)
		}
		assert.Equal(t, []string{
			"Carer1/20250725#0900",
			"Carer1/20250725#0930",
			"Carer2/20250725#0900",
			"Carer2/20250725#0930",
		}, got)
	})

	t.Run("concurrent CompareAndSet has a single winner", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		k := key("Carer1", "20250725", "0900")
		free := domain.NewFreeSlot(k)
		require.NoError(t, store.PutIfAbsent(ctx, free))

		const workers = 20
		var (
			wg        sync.WaitGroup
			succeeded atomic.Int32
			rejected  atomic.Int32
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := store.CompareAndSet(ctx, k, domain.AvailabilityFree, free.Booked("person"))
				switch {
				case err == nil:
					succeeded.Add(1)
				case assert.ErrorIs(t, err, storage.ErrConditionFailed):
					rejected.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), succeeded.Load())
		assert.Equal(t, int32(workers-1), rejected.Load())
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(context.Background()))
	})
}
