package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
)

const transitionBook = "book"

// UseCase moves a slot from Free to Booked.
type UseCase struct {
	store    SlotStore
	recorder TransitionRecorder
	logger   Logger
}

func NewUseCase(store SlotStore, recorder TransitionRecorder, logger Logger) *UseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &UseCase{
		store:    store,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute makes a single conditional write: the slot is booked only if it
// exists and is Free at the moment of the write. Concurrent callers for the
// same slot get exactly one success; there is no retry.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input before touching the store
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	in := normalizeRequest(*req)
	req = &in
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		uc.recorder.RecordTransition(transitionBook, "invalid")
		return nil, err
	}

	key := req.Key()
	uc.logger.Info("BookAppointment: carer=%s, slot=%s, person=%s", key.CarerID, key.DateTimeSlot(), req.PersonName)

	// 2. Free -> Booked, conditional on the current state
	next := domain.NewFreeSlot(key).Booked(req.PersonName)
	err := uc.store.CompareAndSet(ctx, key, domain.AvailabilityFree, next)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrConditionFailed):
		// An expected business outcome, not a failure of the service
		uc.logger.Info("BookAppointment: slot unavailable carer=%s, slot=%s", key.CarerID, key.DateTimeSlot())
		uc.recorder.RecordTransition(transitionBook, "unavailable")
		return nil, ErrSlotUnavailable
	default:
		uc.logger.Error("BookAppointment: store error for carer=%s, slot=%s: %v", key.CarerID, key.DateTimeSlot(), err)
		uc.recorder.RecordTransition(transitionBook, "error")
		return nil, fmt.Errorf("%w: CompareAndSet: %v", ErrInternal, err)
	}

	uc.recorder.RecordTransition(transitionBook, "success")
	uc.logger.Info("BookAppointment: booked carer=%s, slot=%s for %s", key.CarerID, key.DateTimeSlot(), req.PersonName)

	return &Response{
		Success:      true,
		Message:      domain.MsgBooked,
		CarerID:      key.CarerID,
		DateTimeSlot: key.DateTimeSlot(),
		PersonName:   req.PersonName,
	}, nil
}

type nopRecorder struct{}

func (nopRecorder) RecordTransition(string, string) {}
