package redisstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
)

var _ storage.SlotStore = (*Repository)(nil)

// Repository stores slots in Redis. Conditional writes run as Lua scripts so
// the check and the write happen atomically on the server.
type Repository struct {
	rdb       *redis.Client
	namespace string
}

// NewRepository connects with opts and scopes every key under namespace.
func NewRepository(opts *redis.Options, namespace string) (*Repository, error) {
	if namespace == "" {
		return nil, fmt.Errorf("redisstore: namespace cannot be empty")
	}
	return &Repository{rdb: redis.NewClient(opts), namespace: namespace}, nil
}

func (r *Repository) PutIfAbsent(ctx context.Context, slot *domain.Slot) error {
	if err := storage.ValidateForWrite(slot); err != nil {
		return fmt.Errorf("PutIfAbsent: %w", err)
	}

	hasName, name := nameArgs(slot.BookingPersonName)
	created, err := putIfAbsentScript.Run(ctx, r.rdb,
		[]string{
			slotKey(r.namespace, slot.CarerID, slot.DateTimeSlot),
			carerIndexKey(r.namespace, slot.CarerID),
			carersKey(r.namespace),
		},
		slot.CarerID, slot.DateTimeSlot, slot.Date, slot.TimeSlot, string(slot.Availability), hasName, name,
	).Int()
	if err != nil {
		return fmt.Errorf("%w: PutIfAbsent - run script: %v", storage.ErrExecQuery, err)
	}
	if created == 0 {
		return storage.ErrAlreadyExists
	}
	return nil
}

func (r *Repository) CompareAndSet(ctx context.Context, key domain.SlotKey, expected domain.Availability, next *domain.Slot) error {
	if err := storage.ValidateTransition(key, expected, next); err != nil {
		return fmt.Errorf("CompareAndSet: %w", err)
	}

	hasName, name := nameArgs(next.BookingPersonName)
	updated, err := compareAndSetScript.Run(ctx, r.rdb,
		[]string{slotKey(r.namespace, key.CarerID, key.DateTimeSlot())},
		string(expected), string(next.Availability), hasName, name,
	).Int()
	if err != nil {
		return fmt.Errorf("%w: CompareAndSet - run script: %v", storage.ErrExecQuery, err)
	}
	if updated == 0 {
		return storage.ErrConditionFailed
	}
	return nil
}

func (r *Repository) GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error) {
	return r.GetByPartitionAndPrefix(ctx, carerID, "")
}

// GetByPartitionAndPrefix walks the carer's lex index and loads the matching
// hashes in one pipeline.
func (r *Repository) GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error) {
	rangeBy := &redis.ZRangeBy{Min: "-", Max: "+"}
	if prefix != "" {
		rangeBy = &redis.ZRangeBy{Min: "[" + prefix, Max: "[" + prefix + "\xff"}
	}

	members, err := r.rdb.ZRangeByLex(ctx, carerIndexKey(r.namespace, carerID), rangeBy).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPartitionAndPrefix - range index: %v", storage.ErrExecQuery, err)
	}
	if len(members) == 0 {
		return []*domain.Slot{}, nil
	}

	pipe := r.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(members))
	for i, dts := range members {
		cmds[i] = pipe.HGetAll(ctx, slotKey(r.namespace, carerID, dts))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: GetByPartitionAndPrefix - load slots: %v", storage.ErrExecQuery, err)
	}

	slots := make([]*domain.Slot, 0, len(cmds))
	for _, cmd := range cmds {
		hash := cmd.Val()
		if len(hash) == 0 {
			continue
		}
		slot, err := hashToSlot(hash)
		if err != nil {
			return nil, fmt.Errorf("GetByPartitionAndPrefix: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (r *Repository) ScanAll(ctx context.Context) ([]*domain.Slot, error) {
	carers, err := r.rdb.SMembers(ctx, carersKey(r.namespace)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: ScanAll - list carers: %v", storage.ErrExecQuery, err)
	}
	slices.Sort(carers)

	var all []*domain.Slot
	for _, carerID := range carers {
		slots, err := r.GetByPartition(ctx, carerID)
		if err != nil {
			return nil, fmt.Errorf("ScanAll: %w", err)
		}
		all = append(all, slots...)
	}
	return all, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Repository) Close() error {
	return r.rdb.Close()
}
