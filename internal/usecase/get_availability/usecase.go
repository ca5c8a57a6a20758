package get_availability

import (
	"context"
	"fmt"
)

// UseCase answers availability queries.
type UseCase struct {
	reader SlotReader
	logger Logger
}

func NewUseCase(reader SlotReader, logger Logger) *UseCase {
	return &UseCase{
		reader: reader,
		logger: logger,
	}
}

// Execute plans the store read from the filter, then post-filters and sorts.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	// 1. Validate and normalise the filter
	filter, err := toFilter(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Pick the access path
	plan := choosePlan(filter)
	uc.logger.Info("GetAvailability: carer=%q, date=%q, time_slot=%q, availability=%q, plan=%s",
		filter.CarerID, filter.Date, filter.TimeSlot, filter.Availability, plan)

	// 3. Read
	slots, err := fetch(ctx, uc.reader, plan, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: store error, plan=%s: %v", plan, err)
		return nil, fmt.Errorf("%w: %s read: %v", ErrInternal, plan, err)
	}

	// 4. Post-filter and order
	result := filterAndSort(slots, filter)

	uc.logger.Info("GetAvailability: plan=%s, read=%d, returned=%d", plan, len(slots), len(result))
	return &Response{Slots: result, Plan: plan}, nil
}
