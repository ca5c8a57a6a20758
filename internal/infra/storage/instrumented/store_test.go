package instrumented

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-CareSlotService/pkg/metrics"
)

func TestStore_Contract(t *testing.T) {
	storagetest.RunSlotStoreSuite(t, func(t *testing.T) storage.SlotStore {
		return New(memstore.NewRepository(), metrics.NewWithRegistry(prometheus.NewRegistry(), "test"), "memory")
	})
}

func TestStore_CountsOutcomes(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	store := New(memstore.NewRepository(), m, "memory")

	key := domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"}
	free := domain.NewFreeSlot(key)

	require.NoError(t, store.PutIfAbsent(ctx, free))
	require.ErrorIs(t, store.PutIfAbsent(ctx, free), storage.ErrAlreadyExists)
	require.NoError(t, store.CompareAndSet(ctx, key, domain.AvailabilityFree, free.Booked("Alice")))
	require.ErrorIs(t, store.CompareAndSet(ctx, key, domain.AvailabilityFree, free.Booked("Bob")), storage.ErrConditionFailed)

	ops := m.StoreOperationsTotal
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("memory", "put_if_absent", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("memory", "put_if_absent", "already_exists")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("memory", "compare_and_set", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("memory", "compare_and_set", "condition_failed")))
}
