package get_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-CareSlotService/pkg/logger"
)

// spyReader records which read the planner issued.
type spyReader struct {
	SlotReader
	calls  []string
	prefix string
}

func (s *spyReader) GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error) {
	s.calls = append(s.calls, "partition")
	return s.SlotReader.GetByPartition(ctx, carerID)
}

func (s *spyReader) GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error) {
	s.calls = append(s.calls, "prefix")
	s.prefix = prefix
	return s.SlotReader.GetByPartitionAndPrefix(ctx, carerID, prefix)
}

func (s *spyReader) ScanAll(ctx context.Context) ([]*domain.Slot, error) {
	s.calls = append(s.calls, "scan")
	return s.SlotReader.ScanAll(ctx)
}

type failingReader struct{}

func (failingReader) GetByPartition(context.Context, string) ([]*domain.Slot, error) {
	return nil, errors.New("timeout")
}

func (failingReader) GetByPartitionAndPrefix(context.Context, string, string) ([]*domain.Slot, error) {
	return nil, errors.New("timeout")
}

func (failingReader) ScanAll(context.Context) ([]*domain.Slot, error) {
	return nil, errors.New("timeout")
}

func newSpy(t *testing.T) *spyReader {
	store := memstore.NewRepository()
	storagetest.Seed(t, store,
		[]string{"Carer2", "Carer1"},
		[]string{"20250726", "20250725"},
		[]string{"0930", "0900"},
	)
	return &spyReader{SlotReader: store}
}

func TestExecute_FilterCounts(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		wantLen  int
		wantCall string
		wantPlan Plan
	}{
		{"carer and date", &Request{CarerID: "Carer1", Date: "20250725"}, 2, "prefix", PlanPartitionPrefix},
		{"carer only", &Request{CarerID: "Carer1"}, 4, "partition", PlanPartition},
		{"no filter", &Request{}, 8, "scan", PlanFullScan},
		{"nil request", nil, 8, "scan", PlanFullScan},
		{"date only", &Request{Date: "20250726"}, 4, "scan", PlanFullScan},
		{"single slot", &Request{CarerID: "Carer2", Date: "20250726", TimeSlot: "0930"}, 1, "prefix", PlanSingleSlot},
		{"unknown carer", &Request{CarerID: "Carer9"}, 0, "partition", PlanPartition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := newSpy(t)
			uc := NewUseCase(spy, logger.NewNop())

			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Len(t, resp.Slots, tt.wantLen)
			assert.Equal(t, tt.wantPlan, resp.Plan)
			assert.Equal(t, []string{tt.wantCall}, spy.calls)
		})
	}
}

func TestExecute_PrefixShapes(t *testing.T) {
	spy := newSpy(t)
	uc := NewUseCase(spy, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{CarerID: "Carer1", Date: "20250725"})
	require.NoError(t, err)
	assert.Equal(t, "20250725#", spy.prefix)

	_, err = uc.Execute(context.Background(), &Request{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"})
	require.NoError(t, err)
	assert.Equal(t, "20250725#0900", spy.prefix)
}

func TestExecute_SortedOutput(t *testing.T) {
	uc := NewUseCase(newSpy(t), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)

	assert.Equal(t, "Carer1", resp.Slots[0].CarerID)
	assert.Equal(t, "20250725#0900", resp.Slots[0].DateTimeSlot)
	assert.Equal(t, "Carer2", resp.Slots[7].CarerID)
	assert.Equal(t, "20250726#0930", resp.Slots[7].DateTimeSlot)
}

func TestExecute_AvailabilityAndPersonFilters(t *testing.T) {
	spy := newSpy(t)
	store := spy.SlotReader.(*memstore.Repository)
	ctx := context.Background()

	key := domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"}
	require.NoError(t, store.CompareAndSet(ctx, key, domain.AvailabilityFree, domain.NewFreeSlot(key).Booked("Alice")))

	uc := NewUseCase(spy, logger.NewNop())

	resp, err := uc.Execute(ctx, &Request{CarerID: "Carer1", Availability: "Free"})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 3)

	resp, err = uc.Execute(ctx, &Request{Availability: "Booked"})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "Alice", *resp.Slots[0].BookingPersonName)

	resp, err = uc.Execute(ctx, &Request{PersonName: "Alice"})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
}

func TestExecute_InvalidFilters(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"malformed date", &Request{Date: "2025-07-25"}},
		{"malformed time", &Request{CarerID: "Carer1", Date: "20250725", TimeSlot: "9"}},
		{"unknown availability", &Request{Availability: "Maybe"}},
		{"carer with separator", &Request{CarerID: "a#b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(failingReader{}, logger.NewNop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StoreFailure(t *testing.T) {
	uc := NewUseCase(failingReader{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{CarerID: "Carer1"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestChoosePlan(t *testing.T) {
	assert.Equal(t, PlanFullScan, choosePlan(domain.SlotFilter{Date: "20250725", TimeSlot: "0900"}))
	assert.Equal(t, PlanPartition, choosePlan(domain.SlotFilter{CarerID: "Carer1", TimeSlot: "0900"}))
}
