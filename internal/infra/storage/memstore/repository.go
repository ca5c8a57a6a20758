package memstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
)

var _ storage.SlotStore = (*Repository)(nil)

// Repository keeps slots in process memory. Records are cloned on the way
// in and out so callers never share state with the store.
type Repository struct {
	mu     sync.RWMutex
	carers map[string]map[string]*domain.Slot // carer_id -> date_time_slot -> slot
}

func NewRepository() *Repository {
	return &Repository{carers: make(map[string]map[string]*domain.Slot)}
}

func (r *Repository) PutIfAbsent(ctx context.Context, slot *domain.Slot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := storage.ValidateForWrite(slot); err != nil {
		return fmt.Errorf("PutIfAbsent: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	partition, ok := r.carers[slot.CarerID]
	if !ok {
		partition = make(map[string]*domain.Slot)
		r.carers[slot.CarerID] = partition
	}
	if _, exists := partition[slot.DateTimeSlot]; exists {
		return storage.ErrAlreadyExists
	}
	partition[slot.DateTimeSlot] = slot.Clone()
	return nil
}

func (r *Repository) CompareAndSet(ctx context.Context, key domain.SlotKey, expected domain.Availability, next *domain.Slot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := storage.ValidateTransition(key, expected, next); err != nil {
		return fmt.Errorf("CompareAndSet: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.carers[key.CarerID][key.DateTimeSlot()]
	if !ok || current.Availability != expected {
		return storage.ErrConditionFailed
	}

	updated := current.Clone()
	updated.Availability = next.Availability
	updated.BookingPersonName = next.Clone().BookingPersonName
	r.carers[key.CarerID][key.DateTimeSlot()] = updated
	return nil
}

func (r *Repository) GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error) {
	return r.GetByPartitionAndPrefix(ctx, carerID, "")
}

func (r *Repository) GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return collect(r.carers[carerID], prefix), nil
}

func (r *Repository) ScanAll(ctx context.Context) ([]*domain.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	carerIDs := make([]string, 0, len(r.carers))
	for id := range r.carers {
		carerIDs = append(carerIDs, id)
	}
	slices.Sort(carerIDs)

	var out []*domain.Slot
	for _, id := range carerIDs {
		out = append(out, collect(r.carers[id], "")...)
	}
	return out, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *Repository) Close() error {
	return nil
}

// Len returns the number of stored slots.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.carers {
		n += len(p)
	}
	return n
}

func collect(partition map[string]*domain.Slot, prefix string) []*domain.Slot {
	keys := make([]string, 0, len(partition))
	for dts := range partition {
		if strings.HasPrefix(dts, prefix) {
			keys = append(keys, dts)
		}
	}
	slices.Sort(keys)

	out := make([]*domain.Slot, 0, len(keys))
	for _, dts := range keys {
		out = append(out, partition[dts].Clone())
	}
	return out
}
