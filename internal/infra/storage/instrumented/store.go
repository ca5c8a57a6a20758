package instrumented

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/pkg/metrics"
)

const (
	outcomeOK              = "ok"
	outcomeAlreadyExists   = "already_exists"
	outcomeConditionFailed = "condition_failed"
	outcomeError           = "error"
)

var _ storage.SlotStore = (*Store)(nil)

// Store records a counter and a latency histogram for every call to next.
type Store struct {
	next    storage.SlotStore
	metrics *metrics.Metrics
	backend string
}

func New(next storage.SlotStore, m *metrics.Metrics, backend string) *Store {
	return &Store{next: next, metrics: m, backend: backend}
}

func (s *Store) PutIfAbsent(ctx context.Context, slot *domain.Slot) error {
	defer s.observe("put_if_absent", time.Now())
	err := s.next.PutIfAbsent(ctx, slot)
	s.count("put_if_absent", err)
	return err
}

func (s *Store) CompareAndSet(ctx context.Context, key domain.SlotKey, expected domain.Availability, next *domain.Slot) error {
	defer s.observe("compare_and_set", time.Now())
	err := s.next.CompareAndSet(ctx, key, expected, next)
	s.count("compare_and_set", err)
	return err
}

func (s *Store) GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error) {
	defer s.observe("get_by_partition", time.Now())
	slots, err := s.next.GetByPartition(ctx, carerID)
	s.count("get_by_partition", err)
	return slots, err
}

func (s *Store) GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error) {
	defer s.observe("get_by_partition_and_prefix", time.Now())
	slots, err := s.next.GetByPartitionAndPrefix(ctx, carerID, prefix)
	s.count("get_by_partition_and_prefix", err)
	return slots, err
}

func (s *Store) ScanAll(ctx context.Context) ([]*domain.Slot, error) {
	defer s.observe("scan_all", time.Now())
	slots, err := s.next.ScanAll(ctx)
	s.count("scan_all", err)
	return slots, err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *Store) Close() error {
	return s.next.Close()
}

func (s *Store) observe(operation string, start time.Time) {
	s.metrics.StoreOperationDuration.WithLabelValues(s.backend, operation).Observe(time.Since(start).Seconds())
}

func (s *Store) count(operation string, err error) {
	s.metrics.StoreOperationsTotal.WithLabelValues(s.backend, operation, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, storage.ErrAlreadyExists):
		return outcomeAlreadyExists
	case errors.Is(err, storage.ErrConditionFailed):
		return outcomeConditionFailed
	default:
		return outcomeError
	}
}
