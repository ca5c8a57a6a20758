package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/storagetest"
)

// setupTestRepository creates a repository connected to a miniredis instance
func setupTestRepository(t *testing.T) (*Repository, *miniredis.Miniredis) {
	mr := miniredis.NewMiniRedis()
	err := mr.Start()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	repo, err := NewRepository(&redis.Options{Addr: mr.Addr()}, "test")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo, mr
}

func TestRepository_Contract(t *testing.T) {
	storagetest.RunSlotStoreSuite(t, func(t *testing.T) storage.SlotStore {
		repo, _ := setupTestRepository(t)
		return repo
	})
}

func TestNewRepository_RejectsEmptyNamespace(t *testing.T) {
	_, err := NewRepository(&redis.Options{Addr: "localhost:6379"}, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "namespace cannot be empty")
}

func TestRepository_KeyLayout(t *testing.T) {
	repo, mr := setupTestRepository(t)
	ctx := context.Background()

	key := domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"}
	require.NoError(t, repo.PutIfAbsent(ctx, domain.NewFreeSlot(key)))

	assert.True(t, mr.Exists("careslots:test:slot:Carer1:20250725#0900"))
	assert.Equal(t, "Free", mr.HGet("careslots:test:slot:Carer1:20250725#0900", "availability"))

	members, err := mr.ZMembers("careslots:test:carer:Carer1")
	require.NoError(t, err)
	assert.Equal(t, []string{"20250725#0900"}, members)

	carers, err := mr.Members("careslots:test:carers")
	require.NoError(t, err)
	assert.Equal(t, []string{"Carer1"}, carers)
}

func TestRepository_CancelRemovesNameField(t *testing.T) {
	repo, mr := setupTestRepository(t)
	ctx := context.Background()

	key := domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"}
	free := domain.NewFreeSlot(key)
	require.NoError(t, repo.PutIfAbsent(ctx, free))
	require.NoError(t, repo.CompareAndSet(ctx, key, domain.AvailabilityFree, free.Booked("Alice")))
	assert.Equal(t, "Alice", mr.HGet("careslots:test:slot:Carer1:20250725#0900", "booking_person_name"))

	require.NoError(t, repo.CompareAndSet(ctx, key, domain.AvailabilityBooked, free))
	assert.Equal(t, "", mr.HGet("careslots:test:slot:Carer1:20250725#0900", "booking_person_name"))
	assert.Equal(t, "Free", mr.HGet("careslots:test:slot:Carer1:20250725#0900", "availability"))
}

func TestRepository_NamespacesAreIsolated(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	a, err := NewRepository(&redis.Options{Addr: mr.Addr()}, "a")
	require.NoError(t, err)
	defer a.Close()
	b, err := NewRepository(&redis.Options{Addr: mr.Addr()}, "b")
	require.NoError(t, err)
	defer b.Close()

	key := domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"}
	require.NoError(t, a.PutIfAbsent(ctx, domain.NewFreeSlot(key)))
	require.NoError(t, b.PutIfAbsent(ctx, domain.NewFreeSlot(key)))

	all, err := b.ScanAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_ServerDown(t *testing.T) {
	repo, mr := setupTestRepository(t)
	mr.Close()

	err := repo.Ping(context.Background())
	assert.Error(t, err)

	_, err = repo.ScanAll(context.Background())
	assert.ErrorIs(t, err, storage.ErrExecQuery)
}

func TestHashToSlot(t *testing.T) {
	t.Run("decodes booked slot", func(t *testing.T) {
		slot, err := hashToSlot(map[string]string{
			"carer_id":            "Carer1",
			"date_time_slot":      "20250725#0900",
			"date":                "20250725",
			"time_slot":           "0900",
			"availability":        "Booked",
			"booking_person_name": "Alice",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.AvailabilityBooked, slot.Availability)
		require.NotNil(t, slot.BookingPersonName)
		assert.Equal(t, "Alice", *slot.BookingPersonName)
	})

	t.Run("rejects unknown availability", func(t *testing.T) {
		_, err := hashToSlot(map[string]string{
			"carer_id":       "Carer1",
			"date_time_slot": "20250725#0900",
			"availability":   "Held",
		})
		assert.ErrorIs(t, err, storage.ErrDecode)
	})
}
