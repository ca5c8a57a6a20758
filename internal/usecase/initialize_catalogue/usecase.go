package initialize_catalogue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/m04kA/SMC-CareSlotService/internal/catalogue"
	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
)

const DefaultConcurrency = 16

// UseCase seeds the store with every slot of the catalogue as Free.
type UseCase struct {
	writer      SlotWriter
	spec        domain.CatalogueSpec
	concurrency int
	logger      Logger
}

func NewUseCase(writer SlotWriter, spec domain.CatalogueSpec, concurrency int, logger Logger) *UseCase {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &UseCase{
		writer:      writer,
		spec:        spec,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Spec returns the catalogue this use case seeds.
func (uc *UseCase) Spec() domain.CatalogueSpec {
	return uc.spec
}

// Execute writes every slot with put-if-absent, so running it again is a
// no-op for existing slots and booked slots are never reset. All writes are
// awaited; failures other than "already exists" are collected and reported
// together once every write has finished.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Validate catalogue parameters
	if err := catalogue.Validate(uc.spec); err != nil {
		uc.logger.Error("InitializeCatalogue: invalid catalogue: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogue, err)
	}

	uc.logger.Info("InitializeCatalogue: carers=%d, dates=%d, slots_per_day=%d, total=%d",
		len(uc.spec.Carers), len(uc.spec.Dates), uc.spec.SlotsPerDay(), uc.spec.Size())

	// 2. Fan out the writes, bounded by the semaphore
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		errs     error
		total    atomic.Int64
		created  atomic.Int64
		existing atomic.Int64
		sem      = make(chan struct{}, uc.concurrency)
	)

	for key := range catalogue.Generate(uc.spec) {
		total.Add(1)
		sem <- struct{}{}
		wg.Add(1)

		go func(key domain.SlotKey) {
			defer wg.Done()
			defer func() { <-sem }()

			err := uc.writer.PutIfAbsent(ctx, domain.NewFreeSlot(key))
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, storage.ErrAlreadyExists):
				existing.Add(1)
			default:
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", key, err))
				mu.Unlock()
			}
		}(key)
	}

	// 3. Wait for every write before reporting
	wg.Wait()

	resp := &Response{
		Total:    int(total.Load()),
		Created:  int(created.Load()),
		Existing: int(existing.Load()),
	}

	if errs != nil {
		resp.Failed = len(multierr.Errors(errs))
		uc.logger.Error("InitializeCatalogue: %d of %d writes failed: %v", resp.Failed, resp.Total, errs)
		return resp, fmt.Errorf("%w: %d of %d writes failed: %v", ErrInternal, resp.Failed, resp.Total, errs)
	}

	uc.logger.Info("InitializeCatalogue: done, created=%d, existing=%d", resp.Created, resp.Existing)
	return resp, nil
}
